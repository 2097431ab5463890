package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trading-bot/internal/backtest"
	"trading-bot/internal/strategy"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "trading-bot"})
}

// runBacktest executes one backtest request. Error mapping: unknown strategy
// 404, bad parameters or too little history 400, nothing stored 404.
func (s *Server) runBacktest(c *gin.Context) {
	var req backtest.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Symbol == "" || req.Interval == "" || req.StrategyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol, interval and strategy_name are required"})
		return
	}

	result, err := s.Runner.Run(c.Request.Context(), req)
	if err != nil {
		s.renderBacktestError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) renderBacktestError(c *gin.Context, err error) {
	var insufficient *backtest.InsufficientDataError
	switch {
	case errors.Is(err, strategy.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, backtest.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case strategy.IsConfigError(err), errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("backtest failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) listStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": s.Registry.Names()})
}

func (s *Server) listBacktestRuns(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	runs, err := s.Queries.RecentBacktestRuns(c.Request.Context(), limit)
	if err != nil {
		log.Printf("list backtest runs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) listKlines(c *gin.Context) {
	symbol := c.Query("symbol")
	interval := c.Query("interval")
	if symbol == "" || interval == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol and interval are required"})
		return
	}

	limit := 500
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 5000 {
			limit = n
		}
	}

	klines, err := s.Queries.GetRecentKlines(c.Request.Context(), symbol, interval, limit)
	if err != nil {
		log.Printf("list klines: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"klines": klines})
}
