// Package api exposes the backtest and observability endpoints over HTTP.
package api

import (
	"trading-bot/internal/backtest"
	"trading-bot/internal/events"
	"trading-bot/internal/strategy"
	"trading-bot/pkg/db"

	"github.com/gin-gonic/gin"
)

// Server wires HTTP endpoints around the backtest runner and the event bus.
type Server struct {
	Router   *gin.Engine
	Bus      *events.Bus
	Runner   *backtest.Runner
	Registry *strategy.Registry
	Queries  *db.Queries
}

// NewServer builds the router with the full middleware stack and routes.
func NewServer(bus *events.Bus, runner *backtest.Runner, registry *strategy.Registry, queries *db.Queries) *Server {
	r := gin.New()

	// Middleware stack (order matters).
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogger())
	r.Use(RateLimitMiddleware())
	r.Use(CORSMiddleware())

	s := &Server{
		Router:   r,
		Bus:      bus,
		Runner:   runner,
		Registry: registry,
		Queries:  queries,
	}
	s.routes()
	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return s.Router.Run(addr)
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)
	s.Router.GET("/ws", s.websocket)

	api := s.Router.Group("/api")
	{
		api.POST("/backtest", s.runBacktest)
		api.GET("/strategies", s.listStrategies)
		api.GET("/backtests", s.listBacktestRuns)
		api.GET("/klines", s.listKlines)
	}
}
