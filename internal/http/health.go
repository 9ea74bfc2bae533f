package http

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthStore is the view of the catalog the health check needs.
type HealthStore interface {
	Count() int
	Path() string
}

type HealthController struct {
	store   HealthStore
	version string
}

func NewHealthController(store HealthStore, version string) *HealthController {
	return &HealthController{
		store:   store,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.store != nil {
		checks["catalog"] = fmt.Sprintf("ok (%d books)", h.store.Count())
		if _, err := os.Stat(h.store.Path()); err != nil {
			// The in-memory catalog keeps serving without its file, so
			// this degrades the report without failing the check.
			checks["data_file"] = "missing: " + err.Error()
		} else {
			checks["data_file"] = "ok"
		}
	} else {
		checks["catalog"] = "not configured"
		status = "unhealthy"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
