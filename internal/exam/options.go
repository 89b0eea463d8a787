package exam

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedOptions = errors.New("malformed options payload")

// DecodeOptions turns the raw options column into an ordered list of choices.
// The payload may be a JSON array, or a JSON string that itself holds a JSON
// array (double-encoded on import), or the bare inner text of such a string.
// On failure it returns an empty, non-nil slice together with the error so
// callers can render an "options unavailable" state instead of failing.
func DecodeOptions(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}, nil
	}

	var opts []string
	if err := json.Unmarshal([]byte(raw), &opts); err == nil {
		return nonNil(opts), nil
	}

	// A JSON string wrapping the array.
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(inner)), &opts); err == nil {
			return nonNil(opts), nil
		}
	}

	// Quote-wrapped text with escaped quotes, as some CSV exports produce.
	cleaned := strings.ReplaceAll(stripQuotes(raw), `\"`, `"`)
	if err := json.Unmarshal([]byte(cleaned), &opts); err == nil {
		return nonNil(opts), nil
	}

	return []string{}, fmt.Errorf("%w: %.40q", ErrMalformedOptions, raw)
}

// EncodeOptions is the canonical storage form: a plain JSON array.
func EncodeOptions(opts []string) string {
	if opts == nil {
		opts = []string{}
	}
	b, _ := json.Marshal(opts)
	return string(b)
}

func nonNil(opts []string) []string {
	if opts == nil {
		return []string{}
	}
	return opts
}
