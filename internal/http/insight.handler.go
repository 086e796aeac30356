package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pulseanalytics/pulse/internal/appcontext"
	"github.com/pulseanalytics/pulse/internal/apperrors"
	"github.com/pulseanalytics/pulse/internal/entity"
	"github.com/pulseanalytics/pulse/internal/insight"
)

// GenerateInsights recomputes the statistics report for a dataset from its
// stored sample and persists the result. Datasets are immutable, so repeated
// calls yield identical reports.
func GenerateInsights(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			storeUnavailable(c)
			return
		}

		datasetID := c.Param("datasetID")

		doc, err := ctx.Store.FindOne(c.Request.Context(), CollectionDataset, datasetID)
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
			return
		}
		if err != nil {
			ctx.Logger.Error("Failed to get dataset", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dataset"})
			return
		}

		var dataset entity.Dataset
		if err := entity.FromDocument(doc, &dataset); err != nil {
			ctx.Logger.Error("Failed to decode dataset", zap.String("dataset_id", datasetID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode dataset"})
			return
		}

		report := insight.Summarize(dataset.Columns, dataset.Sample)

		record := entity.Insight{
			DatasetID: datasetID,
			Summary:   report.Summary,
			Details:   report.Details,
		}

		insightDoc, err := entity.ToDocument(record)
		if err != nil {
			ctx.Logger.Error("Failed to encode insight", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode insight"})
			return
		}

		id, err := ctx.Store.Create(c.Request.Context(), CollectionInsight, insightDoc)
		if err != nil {
			ctx.Logger.Error("Failed to store insight", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store insight"})
			return
		}

		record.ID = id
		c.JSON(http.StatusOK, record)
	}
}
