package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pulseanalytics/pulse/internal/appcontext"
	"github.com/pulseanalytics/pulse/internal/apperrors"
	"github.com/pulseanalytics/pulse/internal/entity"
)

// SaveChart validates that the referenced dataset exists and persists the
// chart configuration. Nothing is persisted when the reference is missing.
func SaveChart(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			storeUnavailable(c)
			return
		}

		var chart entity.Chart
		if err := c.ShouldBindJSON(&chart); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chart payload: " + err.Error()})
			return
		}

		_, err := ctx.Store.FindOne(c.Request.Context(), CollectionDataset, chart.DatasetID)
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.Logger.Info("Rejected chart", zap.String("dataset_id", chart.DatasetID), zap.Error(apperrors.ErrMissingReference))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Related dataset not found"})
			return
		}
		if err != nil {
			ctx.Logger.Error("Failed to check dataset reference", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check dataset reference"})
			return
		}

		// Ids are store-assigned; ignore any client-provided value.
		chart.ID = ""
		if chart.Options == nil {
			chart.Options = map[string]any{}
		}

		doc, err := entity.ToDocument(chart)
		if err != nil {
			ctx.Logger.Error("Failed to encode chart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode chart"})
			return
		}

		id, err := ctx.Store.Create(c.Request.Context(), CollectionChart, doc)
		if err != nil {
			ctx.Logger.Error("Failed to store chart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store chart"})
			return
		}

		chart.ID = id
		c.JSON(http.StatusOK, chart)
	}
}

// ListCharts returns stored charts, optionally filtered by dataset_id.
func ListCharts(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			c.JSON(http.StatusOK, []any{})
			return
		}

		filter := map[string]any{}
		if datasetID := c.Query("dataset_id"); datasetID != "" {
			filter["dataset_id"] = datasetID
		}

		docs, err := ctx.Store.List(c.Request.Context(), CollectionChart, filter)
		if err != nil {
			ctx.Logger.Error("Failed to list charts", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list charts"})
			return
		}

		c.JSON(http.StatusOK, docs)
	}
}
