package http

import (
	"github.com/robinsingh-ai/library-api/internal/bookstore"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. This replaces a long parameter list in NewRouter.
type RouterConfig struct {
	// Core dependencies
	Store *bookstore.Store

	// CORS configuration; "*" allows any origin
	CORSAllowOrigins []string

	// Application info
	Version string
}
