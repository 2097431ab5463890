package strategy

// Params carries named strategy options as decoded from JSON or YAML.
// Numeric values may arrive as float64, int or json.Number depending on the
// decoder, so access goes through the coercing helpers below.
type Params map[string]any

func (p Params) intValue(key string, def int) (int, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, configErrorf("parameter %q must be an integer, got %v", key, v)
		}
		return int(v), nil
	case interface{ Int64() (int64, error) }: // json.Number
		i, err := v.Int64()
		if err != nil {
			return 0, configErrorf("parameter %q must be an integer: %v", key, err)
		}
		return int(i), nil
	default:
		return 0, configErrorf("parameter %q has unsupported type %T", key, raw)
	}
}

func (p Params) floatValue(key string, def float64) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := v.Float64()
		if err != nil {
			return 0, configErrorf("parameter %q must be a number: %v", key, err)
		}
		return f, nil
	default:
		return 0, configErrorf("parameter %q has unsupported type %T", key, raw)
	}
}
