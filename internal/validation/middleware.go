package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/robinsingh-ai/library-api/internal/entities"
)

// ContextKeyBookInput is the gin context key under which BookPayload stores
// the validated, normalized book input for the downstream handler.
const ContextKeyBookInput = "validated_book_input"

// CatalogReader is the read-only view of the store the uniqueness checks
// need. They never mutate.
type CatalogReader interface {
	GetByID(id string) (entities.Book, bool)
	ISBNExists(isbn string) bool
}

// BookInputFrom returns the validated book input placed in the context by
// BookPayload.
func BookInputFrom(c *gin.Context) (entities.BookInput, bool) {
	value, ok := c.Get(ContextKeyBookInput)
	if !ok {
		return entities.BookInput{}, false
	}
	input, ok := value.(entities.BookInput)
	return input, ok
}

// BookPayload decodes and validates the request body. On success the
// normalized input is stored in the context; on failure the request is
// aborted with a 400 naming the violated constraint. A body that cannot be
// decoded at all is reported as a request-shape problem, distinct from the
// field-constraint failures.
func BookPayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload bookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": decodeErrorMessage(err)})
			return
		}

		input, verr := payload.validate()
		if verr != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}

		c.Set(ContextKeyBookInput, input)
		c.Next()
	}
}

// decodeErrorMessage turns a JSON decode failure into a client-facing reason.
// Type mismatches name the offending field; anything else is a generic
// payload error.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s has the wrong type: expected %s", typeErr.Field, typeErr.Type)
	}
	return "Invalid request payload"
}

// BookID validates the :id path parameter.
func BookID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if strings.TrimSpace(id) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Valid book ID is required"})
			return
		}
		c.Next()
	}
}

// DuplicateISBN rejects a create whose ISBN already exists in the catalog.
// Runs after BookPayload, so the input in the context is already normalized.
func DuplicateISBN(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := BookInputFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		if store.ISBNExists(input.ISBN) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Book with ISBN %s already exists", input.ISBN),
			})
			return
		}
		c.Next()
	}
}

// DuplicateISBNOnUpdate rejects an update whose ISBN belongs to a different
// book. A book may keep its own ISBN, and an unknown target ID is left for
// the handler's not-found path.
func DuplicateISBNOnUpdate(store CatalogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := BookInputFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		current, found := store.GetByID(c.Param("id"))
		if !found {
			c.Next()
			return
		}
		if current.ISBN == input.ISBN {
			c.Next()
			return
		}

		if store.ISBNExists(input.ISBN) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Another book with ISBN %s already exists", input.ISBN),
			})
			return
		}
		c.Next()
	}
}
