package search

import (
	"strconv"
	"strings"
)

// ParseVolume converts a display volume string such as "$1.2m", "$500k" or
// "$2b" into a numeric value. "$" and "," are stripped; a trailing k/m/b
// (case-insensitive) scales by 1e3/1e6/1e9; unsuffixed values are taken
// literally. Anything unparseable yields 0, which gives the volume sort a
// total order.
func ParseVolume(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}

	mult := 1.0
	switch s[len(s)-1] {
	case 'k', 'K':
		mult = 1e3
		s = s[:len(s)-1]
	case 'm', 'M':
		mult = 1e6
		s = s[:len(s)-1]
	case 'b', 'B':
		mult = 1e9
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n * mult
}
