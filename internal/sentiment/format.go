package sentiment

import (
	"strconv"
	"strings"
)

// FormatScore prints the shortest representation of score, always with a
// decimal point: 0 -> "0.0", 0.5 -> "0.5".
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
