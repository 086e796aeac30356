package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pulseanalytics/pulse/internal/appcontext"
	"github.com/pulseanalytics/pulse/internal/entity"
)

// CreateDashboard persists a named grouping of saved charts. Chart ids are
// not referentially validated.
func CreateDashboard(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			storeUnavailable(c)
			return
		}

		var dashboard entity.Dashboard
		if err := c.ShouldBindJSON(&dashboard); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dashboard payload: " + err.Error()})
			return
		}

		dashboard.ID = ""
		if dashboard.ChartIDs == nil {
			dashboard.ChartIDs = []string{}
		}

		doc, err := entity.ToDocument(dashboard)
		if err != nil {
			ctx.Logger.Error("Failed to encode dashboard", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode dashboard"})
			return
		}

		id, err := ctx.Store.Create(c.Request.Context(), CollectionDashboard, doc)
		if err != nil {
			ctx.Logger.Error("Failed to store dashboard", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store dashboard"})
			return
		}

		dashboard.ID = id
		c.JSON(http.StatusOK, dashboard)
	}
}

func ListDashboards(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			c.JSON(http.StatusOK, []any{})
			return
		}

		docs, err := ctx.Store.List(c.Request.Context(), CollectionDashboard, nil)
		if err != nil {
			ctx.Logger.Error("Failed to list dashboards", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list dashboards"})
			return
		}

		c.JSON(http.StatusOK, docs)
	}
}
