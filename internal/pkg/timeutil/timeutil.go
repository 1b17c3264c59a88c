package timeutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// The API exposes two wire encodings for timestamps: integer epoch
// milliseconds (users, conversations) and an ISO-8601 string with an
// explicit +00:00 offset (messages). Both always render in UTC.

const exportLayout = "2006-01-02T15:04:05.000000"

// UnixMillis converts a stored timestamp to epoch milliseconds.
func UnixMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// ExportISO renders a stored timestamp as an ISO-8601 string with
// microsecond precision and a +00:00 offset.
func ExportISO(t time.Time) string {
	return t.UTC().Format(exportLayout) + "+00:00"
}

// parse layouts tried in order for string createdAt values. Naive
// timestamps (no offset) are taken as UTC.
var parseLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCreatedAt parses a caller-supplied createdAt value. Accepts a
// fractional Unix timestamp in seconds (any JSON number) or an ISO-8601
// string; a trailing "Z" is normalized to "+00:00". A nil value yields the
// zero time, meaning "use the server default". Any other type or an
// unparsable string is a format error.
func ParseCreatedAt(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case float64:
		return fromUnixSeconds(v), nil
	case float32:
		return fromUnixSeconds(float64(v)), nil
	case int:
		return time.Unix(int64(v), 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid numeric value for 'createdAt': %w", err)
		}
		return fromUnixSeconds(f), nil
	case string:
		return parseISOString(v)
	default:
		return time.Time{}, fmt.Errorf("invalid type for 'createdAt': expected float or string, got %T", value)
	}
}

func fromUnixSeconds(sec float64) time.Time {
	whole := int64(sec)
	frac := sec - float64(whole)
	return time.Unix(whole, int64(frac*1e9)).UTC()
}

func parseISOString(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format for 'createdAt': expected ISO 8601, got %q", s)
}
