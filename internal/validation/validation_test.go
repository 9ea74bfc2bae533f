package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinsingh-ai/library-api/internal/entities"
)

func ptr[T any](v T) *T { return &v }

func validPayload() bookPayload {
	return bookPayload{
		ISBN:          ptr("9780061120084"),
		Title:         ptr("To Kill a Mockingbird"),
		Author:        ptr("Harper Lee"),
		Genre:         ptr("Fiction"),
		YearPublished: ptr(1960.0),
	}
}

func TestBookPayloadValidate(t *testing.T) {
	t.Run("accepts a valid payload", func(t *testing.T) {
		payload := validPayload()
		input, err := payload.validate()
		require.Nil(t, err)
		assert.Equal(t, entities.BookInput{
			ISBN:          "9780061120084",
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Genre:         "Fiction",
			YearPublished: 1960,
		}, input)
	})

	t.Run("normalizes a hyphenated ISBN", func(t *testing.T) {
		payload := validPayload()
		payload.ISBN = ptr("978-0-06-112008-4")

		input, err := payload.validate()
		require.Nil(t, err)
		assert.Equal(t, "9780061120084", input.ISBN)
	})

	t.Run("requires the ISBN", func(t *testing.T) {
		payload := validPayload()
		payload.ISBN = nil

		_, err := payload.validate()
		require.NotNil(t, err)
		assert.Equal(t, "ISBN is required and must be a string", err.Reason)
	})

	t.Run("names the violated ISBN constraint", func(t *testing.T) {
		cases := map[string]string{
			"12345":         "ISBN must be 13 digits long",
			"97800611200xx": "ISBN must contain only numeric characters",
			"9780061120085": "ISBN has an invalid ISBN-13 check digit",
		}
		for raw, want := range cases {
			payload := validPayload()
			payload.ISBN = ptr(raw)

			_, err := payload.validate()
			require.NotNil(t, err, raw)
			assert.Equal(t, want, err.Reason)
		}
	})

	t.Run("rejects missing or blank strings", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			mutate func(*bookPayload)
			want   string
		}{
			{"missing title", func(p *bookPayload) { p.Title = nil }, "Title is required and must be a non-empty string"},
			{"blank title", func(p *bookPayload) { p.Title = ptr("   ") }, "Title is required and must be a non-empty string"},
			{"missing author", func(p *bookPayload) { p.Author = nil }, "Author is required and must be a non-empty string"},
			{"blank author", func(p *bookPayload) { p.Author = ptr("\t") }, "Author is required and must be a non-empty string"},
			{"missing genre", func(p *bookPayload) { p.Genre = nil }, "Genre is required and must be a non-empty string"},
			{"blank genre", func(p *bookPayload) { p.Genre = ptr(" ") }, "Genre is required and must be a non-empty string"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				payload := validPayload()
				tc.mutate(&payload)

				_, err := payload.validate()
				require.NotNil(t, err)
				assert.Equal(t, tc.want, err.Reason)
			})
		}
	})

	t.Run("rejects out-of-range years", func(t *testing.T) {
		currentYear := time.Now().Year()
		want := fmt.Sprintf("yearPublished must be a valid year between 1000 and %d", currentYear)

		for name, year := range map[string]*float64{
			"missing":    nil,
			"too early":  ptr(999.0),
			"future":     ptr(2999.0),
			"fractional": ptr(1960.5),
		} {
			payload := validPayload()
			payload.YearPublished = year

			_, err := payload.validate()
			require.NotNil(t, err, name)
			assert.Equal(t, want, err.Reason, name)
		}
	})

	t.Run("accepts the boundary years", func(t *testing.T) {
		for _, year := range []float64{1000, float64(time.Now().Year())} {
			payload := validPayload()
			payload.YearPublished = ptr(year)

			_, err := payload.validate()
			assert.Nil(t, err)
		}
	})

	t.Run("checks the ISBN before other fields", func(t *testing.T) {
		payload := validPayload()
		payload.ISBN = ptr("bad")
		payload.Title = nil

		_, err := payload.validate()
		require.NotNil(t, err)
		assert.Contains(t, err.Reason, "ISBN")
	})
}
