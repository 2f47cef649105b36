package analyze

import (
	"strconv"
	"strings"
)

// ParseCount converts a displayed engagement count like "1,234", "1.2K", or
// "5.7M" to an integer. Anything that fails to parse after cleanup is 0;
// a bad field never fails the batch.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(strings.ToUpper(s), "K"):
		multiplier = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(strings.ToUpper(s), "M"):
		multiplier = 1_000_000
		s = s[:len(s)-1]
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0
	}

	return int(value * multiplier)
}

// NormalizeCounts parses the three raw stat strings of a record.
func NormalizeCounts(replies, retweets, likes string) (int, int, int) {
	return ParseCount(replies), ParseCount(retweets), ParseCount(likes)
}
