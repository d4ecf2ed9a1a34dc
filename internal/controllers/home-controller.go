package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const indexPage = "<h1>Code challenge</h1>"

// Index godoc
// @Summary Greeting page
// @Tags home
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// Pinger reports whether a dependency is reachable
type Pinger func() error

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func HealthCheck(ping Pinger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status, database, code := "healthy", "up", http.StatusOK
		if err := ping(); err != nil {
			log.WithError(err).Warn("Health check failed to reach database")
			status, database, code = "unhealthy", "down", http.StatusServiceUnavailable
		}
		ctx.JSON(code, gin.H{
			"status":    status,
			"database":  database,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "pizza-restaurants-api",
		})
	}
}
