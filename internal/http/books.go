package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinsingh-ai/library-api/internal/bookstore"
	"github.com/robinsingh-ai/library-api/internal/entities"
	"github.com/robinsingh-ai/library-api/internal/validation"
)

// BookStore defines the catalog operations the controller needs.
type BookStore interface {
	GetAll() []entities.Book
	GetByID(id string) (entities.Book, bool)
	Create(input entities.BookInput) (entities.Book, error)
	Update(id string, input entities.BookInput) (entities.Book, error)
	Delete(id string) bool
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// GetAllBooks handles GET /books.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, controller.store.GetAll())
}

// GetBookByID handles GET /books/:id.
func (controller *BooksController) GetBookByID(c *gin.Context) {
	book, ok := controller.store.GetByID(c.Param("id"))
	if !ok {
		respondNotFound(c, "Book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// CreateBook handles POST /books. The validation chain has already checked
// the payload and ISBN uniqueness, but the store re-checks under its own lock
// so a concurrent create with the same ISBN still gets a 409.
func (controller *BooksController) CreateBook(c *gin.Context) {
	input, ok := validation.BookInputFrom(c)
	if !ok {
		respondInternalError(c, errors.New("missing validated payload"), "create book")
		return
	}

	book, err := controller.store.Create(input)
	if err != nil {
		var conflict *bookstore.ConflictError
		if errors.As(err, &conflict) {
			respondConflict(c, conflict.Error())
		} else {
			respondInternalError(c, err, "create book")
		}
		return
	}

	c.IndentedJSON(http.StatusCreated, book)
}

// UpdateBook handles PUT /books/:id. Updates are full replacements; the ID is
// preserved by the store.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	input, ok := validation.BookInputFrom(c)
	if !ok {
		respondInternalError(c, errors.New("missing validated payload"), "update book")
		return
	}

	book, err := controller.store.Update(c.Param("id"), input)
	if err != nil {
		var conflict *bookstore.ConflictError
		switch {
		case errors.Is(err, bookstore.ErrNotFound):
			respondNotFound(c, "Book")
		case errors.As(err, &conflict):
			respondConflict(c, conflict.Error())
		default:
			respondInternalError(c, err, "update book")
		}
		return
	}

	c.IndentedJSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /books/:id.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	if !controller.store.Delete(c.Param("id")) {
		respondNotFound(c, "Book")
		return
	}
	c.Status(http.StatusNoContent)
}
