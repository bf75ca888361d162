package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"factoryflow/internal/util"
)

var errNoSummarizer = errors.New("cause summarizer is not configured")

// cors allows the dashboard to be served from any origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// recovery is the outermost failure boundary: anything unclassified becomes a
// logged 500 with a generic error body.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		util.LogErrorf("Panic serving %s: %v", c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "route not found",
		"available_endpoints": []string{
			"GET /health",
			"GET /api/processes",
			"GET /api/analysis",
			"GET /api/flow?date=YYYY-MM-DD",
			"GET /api/charts",
			"GET /api/employees",
			"GET /api/causes",
		},
	})
}
