package utils

import (
	"time"

	"github.com/taskhive/taskhive/apperrors"
)

// ParseDeadline parses a deadline from a request. RFC3339 timestamps and
// plain dates like "2026-03-01" are accepted, anything else is a validation
// error. An empty string means no deadline.
func ParseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	return nil, apperrors.Validation("invalid deadline: use RFC3339 or YYYY-MM-DD")
}
