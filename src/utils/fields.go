package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Body is a decoded JSON request body
type Body map[string]any

// Aliases lists the accepted field names of one logical field, most preferred first
type Aliases []string

// FirstPresent returns the first alias whose value is present and not null
func FirstPresent(body Body, aliases Aliases) (any, bool) {
	for _, name := range aliases {
		if v, ok := body[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// FirstString returns the first present alias rendered as a string
func FirstString(body Body, aliases Aliases) *string {
	v, ok := FirstPresent(body, aliases)
	if !ok {
		return nil
	}
	s := ToString(v)
	return &s
}

// FirstNumber returns the first present alias as a number. A present value
// that is not numeric yields an error so callers can reject it.
func FirstNumber(body Body, aliases Aliases) (*float64, error) {
	v, ok := FirstPresent(body, aliases)
	if !ok {
		return nil, nil
	}
	n, ok := ToNumber(v)
	if !ok {
		return nil, fmt.Errorf("%s must be numeric", aliases[0])
	}
	return &n, nil
}

// ToString renders a JSON scalar as text
func ToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// ToNumber converts JSON numbers and numeric strings
func ToNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// TrimmedOrNil trims s and maps an empty result to nil
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
