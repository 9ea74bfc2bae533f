package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robinsingh-ai/library-api/internal/bookstore"
	"github.com/robinsingh-ai/library-api/internal/config"
	http_controllers "github.com/robinsingh-ai/library-api/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the catalog store into the router and starts serving.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library API v%s", version)

	store := bookstore.New(cfg.Database.Path)
	log.Printf("Catalog initialized from %s with %d books", cfg.Database.Path, store.Count())

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:            store,
		CORSAllowOrigins: cfg.CORS.AllowOrigins,
		Version:          version,
	})

	Serve(router, cfg)
}
