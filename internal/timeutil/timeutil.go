// ABOUTME: Best-effort conversion of heterogeneous feed date strings to Unix seconds
// ABOUTME: Tries fixed RFC 2822 / ISO 8601 layouts, then dateparse; failure yields 0

package timeutil

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// layouts are tried in order before falling back to dateparse.
// Layouts without a zone are interpreted as UTC.
var layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
	time.ANSIC,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// namedZones maps the obsolete RFC 2822 zone names that time.Parse either
// rejects or reads as zero-offset placeholders to their numeric offsets.
var namedZones = map[string]string{
	"UT":  "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// numericZone rewrites a trailing named zone into its numeric offset.
func numericZone(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	if offset, ok := namedZones[strings.ToUpper(s[i+1:])]; ok {
		return s[:i+1] + offset
	}
	return s
}

// ParseEpoch parses a date-time string and returns Unix epoch seconds.
// Returns 0 when the string cannot be parsed, so callers cannot tell
// a real 1970-01-01T00:00:00Z apart from garbage.
func ParseEpoch(s string) int64 {
	t, ok := Parse(s)
	if !ok {
		return 0
	}
	return t.Unix()
}

// Parse parses a date-time string into a time.Time.
func Parse(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	s = numericZone(s)

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed, true
		}
	}

	// dateparse has panicked on some malformed inputs in the past
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		// Some feeds emit "24:00:00" for midnight
		if strings.Contains(err.Error(), "hour out of range") {
			if parsed, err = dateparse.ParseIn(strings.Replace(s, "24:", "00:", 1), time.UTC); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	}
	return parsed, true
}
