package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pulseanalytics/pulse/internal/appcontext"
)

const maxReportedCollections = 10

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Business Analytics Backend Running"})
	}
}

// Health reports store reachability and the known collection names. Always
// 200; a degraded store is described in the body rather than failing the
// check outright.
func Health(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":     "running",
			"database":    "not configured",
			"collections": []string{},
		}

		if ctx.Store == nil {
			c.JSON(http.StatusOK, response)
			return
		}

		if err := ctx.Store.Ping(c.Request.Context()); err != nil {
			ctx.Logger.Warn("Document store unreachable", zap.Error(err))
			response["database"] = "unreachable"
			c.JSON(http.StatusOK, response)
			return
		}
		response["database"] = "connected"

		names, err := ctx.Store.Collections(c.Request.Context())
		if err != nil {
			ctx.Logger.Warn("Failed to list collections", zap.Error(err))
			c.JSON(http.StatusOK, response)
			return
		}
		if len(names) > maxReportedCollections {
			names = names[:maxReportedCollections]
		}
		response["collections"] = names

		c.JSON(http.StatusOK, response)
	}
}
