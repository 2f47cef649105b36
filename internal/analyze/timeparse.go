package analyze

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Nitter shows recent posts with relative labels ("3h", "45m") and older
// ones with absolute dates. The hour check runs before the minute check, so
// a malformed label matching both resolves through the hour branch.
var (
	hourPattern   = regexp.MustCompile(`^(\d+)\s*h`)
	minutePattern = regexp.MustCompile(`^(\d+)\s*m`)
)

// absoluteLayouts are the date formats Nitter mirrors have been seen to
// render, most specific first.
var absoluteLayouts = []string{
	"Jan 2, 2006 · 3:04 PM UTC",
	"Jan 2, 2006 · 15:04 UTC",
	"Jan 2, 2006",
	"2 Jan 2006",
	"Jan 2",
	time.RFC3339,
}

// ResolveTime converts a displayed date label into an absolute time. It
// returns ok=false when no pattern matches; it never fails in any other
// way. Longer relative ranges ("2d", "yesterday") are not recognized and
// fall through to the absolute parse.
func ResolveTime(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if m := hourPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return now.Add(-time.Duration(n) * time.Hour), true
		}
	}
	if m := minutePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return now.Add(-time.Duration(n) * time.Minute), true
		}
	}

	for _, layout := range absoluteLayouts {
		parsed, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		if parsed.Year() == 0 {
			// Year-less label like "Jan 2", assume the current year.
			parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), 0, 0, parsed.Location())
		}
		return parsed, true
	}

	return time.Time{}, false
}
