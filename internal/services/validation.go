package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// parseID accepts a positive integral JSON number or numeric string
func parseID(v any) (uint, bool) {
	switch id := v.(type) {
	case float64:
		if id < 1 || id != math.Trunc(id) || id > math.MaxUint32 {
			return 0, false
		}
		return uint(id), true
	case int:
		if id < 1 {
			return 0, false
		}
		return uint(id), true
	case uint:
		return id, id > 0
	case json.Number:
		return parseID(string(id))
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(id), 10, 32)
		if err != nil || n == 0 {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}

// parsePrice accepts only a finite JSON number greater than zero.
// Strings and booleans are rejected even when they look numeric.
func parsePrice(v any) (float64, bool) {
	var price float64
	switch p := v.(type) {
	case float64:
		price = p
	case int:
		price = float64(p)
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0, false
		}
		price = f
	default:
		return 0, false
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, false
	}
	return price, true
}
