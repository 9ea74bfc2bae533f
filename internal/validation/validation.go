// Package validation rejects malformed or conflicting book data before it
// reaches the store. The checks run as an ordered gin middleware chain; the
// first failing check aborts the request with a reason naming the violated
// constraint.
package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/robinsingh-ai/library-api/internal/entities"
	"github.com/robinsingh-ai/library-api/internal/isbn"
)

// ValidationError carries a human-readable reason for rejecting a payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// bookPayload mirrors the request body with pointer fields so that missing
// keys are distinguishable from zero values. The year is decoded as a float
// to report out-of-range and fractional values with the same reason the
// field-constraint check uses, instead of a generic decode failure.
type bookPayload struct {
	ISBN          *string  `json:"isbn"`
	Title         *string  `json:"title"`
	Author        *string  `json:"author"`
	Genre         *string  `json:"genre"`
	YearPublished *float64 `json:"yearPublished"`
}

// validate applies the field checks in order and returns the normalized
// BookInput on success. The ISBN is stored in its normalized (hyphen- and
// whitespace-free) form; the remaining fields pass through as submitted.
func (p *bookPayload) validate() (entities.BookInput, *ValidationError) {
	if p.ISBN == nil {
		return entities.BookInput{}, invalid("ISBN is required and must be a string")
	}
	normalized := isbn.Normalize(*p.ISBN)
	if err := isbn.Validate(normalized); err != nil {
		return entities.BookInput{}, invalid("%s", err.Error())
	}

	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return entities.BookInput{}, invalid("Title is required and must be a non-empty string")
	}
	if p.Author == nil || strings.TrimSpace(*p.Author) == "" {
		return entities.BookInput{}, invalid("Author is required and must be a non-empty string")
	}
	if p.Genre == nil || strings.TrimSpace(*p.Genre) == "" {
		return entities.BookInput{}, invalid("Genre is required and must be a non-empty string")
	}

	currentYear := time.Now().Year()
	year := p.YearPublished
	if year == nil || math.IsNaN(*year) || *year != math.Trunc(*year) ||
		*year < 1000 || *year > float64(currentYear) {
		return entities.BookInput{}, invalid("yearPublished must be a valid year between 1000 and %d", currentYear)
	}

	return entities.BookInput{
		ISBN:          normalized,
		Title:         *p.Title,
		Author:        *p.Author,
		Genre:         *p.Genre,
		YearPublished: int(*year),
	}, nil
}
