package source

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const salaryUnknown = "unknown"

// validURL reports whether raw is a well-formed absolute http(s) URL.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// salaryFrom walks the candidate fields in order and returns the first
// populated one coerced to a string, or "unknown". A candidate that is an
// empty string, zero number or null does not count as populated; a
// whitespace-only winner still yields "unknown" rather than falling through
// to later candidates.
func salaryFrom(candidates ...json.RawMessage) string {
	for _, c := range candidates {
		if len(c) == 0 || string(c) == "null" {
			continue
		}

		var s string
		if json.Unmarshal(c, &s) == nil {
			if s == "" {
				continue
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
			return salaryUnknown
		}

		var n float64
		if json.Unmarshal(c, &n) == nil {
			if n == 0 {
				continue
			}
			return strconv.FormatFloat(n, 'f', -1, 64)
		}

		// Populated but not a string or number: no usable salary text.
		return salaryUnknown
	}
	return salaryUnknown
}

// isoDateLayouts are tried in order against ISO-like date strings.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// postedDate normalizes a created_at value to a YYYY-MM-DD string.
// Strings are parsed as ISO-like timestamps, falling back to the leading ten
// characters; numbers are epoch seconds, or milliseconds when beyond a
// plausible seconds range. Absent or unparseable values return nil.
func postedDate(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		for _, layout := range isoDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return datePtr(t.Format("2006-01-02"))
			}
		}
		if len(s) >= 10 {
			return datePtr(s[:10])
		}
		return nil
	}

	var ts float64
	if json.Unmarshal(raw, &ts) == nil {
		if ts <= 0 {
			return nil
		}
		if ts > 1e12 {
			ts /= 1000
		}
		return datePtr(time.Unix(int64(ts), 0).UTC().Format("2006-01-02"))
	}

	return nil
}

func datePtr(s string) *string {
	return &s
}
