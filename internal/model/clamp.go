package model

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

// ClampProgress bounds progress to [0, 100].
func ClampProgress(v int) int {
	return max(MinProgress, min(MaxProgress, v))
}

// ClampQuantity floors quantity at zero. There is no upper bound.
func ClampQuantity(v int) int {
	return max(0, v)
}

// ParseNumber coerces raw form input to an int. Anything that is not a finite
// number becomes 0; fractions truncate toward zero.
func ParseNumber(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}
