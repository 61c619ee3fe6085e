package upload

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError names the required fields that were absent or blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// RequireFields checks that every key is present and does not trim to empty.
// Pure; safe to run before or after Accept.
func RequireFields(values url.Values, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if strings.TrimSpace(values.Get(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// SplitList turns a delimited form value like "Go, Rust , Python" into a
// trimmed list, preserving order and dropping empty entries.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
