package document

import (
	"strconv"
	"strings"
)

// Normalize converts locale-formatted numeric text into a float. The only
// locale handling is the comma decimal separator; anything unparseable
// yields zero, because numeric fields are best-effort and must never block
// data entry with a parse error.
func Normalize(raw string) float64 {
	sanitized := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	v, err := strconv.ParseFloat(sanitized, 64)
	if err != nil {
		return 0
	}
	return v
}
