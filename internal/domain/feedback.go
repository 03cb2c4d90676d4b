package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Feedback is a single user's like or dislike of a POI.
// (UserID, POIID) is the identity; a second submission overwrites Liked.
type Feedback struct {
	UserID    int64
	POIID     int64
	Liked     bool
	UpdatedAt time.Time
}

// ParsePOIID coerces a client-supplied poi_id into an integer identifier.
// Accepts a JSON integer (12, 12.0) or a string holding one ("12").
func ParsePOIID(raw json.RawMessage) (int64, error) {
	v, ok := scalarText(raw)
	if !ok {
		return 0, fmt.Errorf("%w: poi_id must be an integer", ErrValidation)
	}
	id, ok := parseIntLike(v)
	if !ok {
		return 0, fmt.Errorf("%w: poi_id must be an integer", ErrValidation)
	}
	return id, nil
}

// ParseLiked coerces a client-supplied liked flag into a bool.
// Accepts true/false, 0/1 and "0"/"1".
func ParseLiked(raw json.RawMessage) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	v, ok := scalarText(trimmed)
	if ok {
		if n, ok := parseIntLike(v); ok {
			switch n {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
		}
	}
	return false, fmt.Errorf("%w: liked must be 0 or 1", ErrValidation)
}

// scalarText returns the textual content of a JSON number or string literal.
// Objects, arrays, booleans, null and malformed input report false.
func scalarText(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", false
	}
	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", false
		}
		return n.String(), true
	default:
		return "", false
	}
}

// parseIntLike parses s as a whole number. "7" and "7.0" succeed; "7.5",
// "abc" and "" do not.
func parseIntLike(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, false
	}
	return int64(f), true
}
