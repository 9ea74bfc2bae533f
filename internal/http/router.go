package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/robinsingh-ai/library-api/internal/validation"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	health := NewHealthController(cfg.Store, cfg.Version)
	booksController := NewBooksController(cfg.Store)

	// Root and health endpoints
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Library Management API is running...")
	})
	router.GET("/health", health.Status)

	// Books API endpoints. Mutations run through the validation chain
	// before they reach the store.
	router.GET("/books", booksController.GetAllBooks)
	router.GET("/books/:id", booksController.GetBookByID)
	router.POST("/books",
		validation.BookPayload(),
		validation.DuplicateISBN(cfg.Store),
		booksController.CreateBook)
	router.PUT("/books/:id",
		validation.BookID(),
		validation.BookPayload(),
		validation.DuplicateISBNOnUpdate(cfg.Store),
		booksController.UpdateBook)
	router.DELETE("/books/:id",
		validation.BookID(),
		booksController.DeleteBook)

	return router
}
