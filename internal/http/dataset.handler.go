package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pulseanalytics/pulse/internal/appcontext"
	"github.com/pulseanalytics/pulse/internal/apperrors"
	"github.com/pulseanalytics/pulse/internal/entity"
	"github.com/pulseanalytics/pulse/internal/inference"
)

// UploadDataset parses an uploaded CSV file, infers the column schema over
// the full content, and persists the dataset record with its leading sample.
func UploadDataset(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			ctx.Logger.Error("Failed to get file from request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get file from request"})
			return
		}

		if !isCSVFile(file) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are supported"})
			return
		}

		if ctx.Store == nil {
			storeUnavailable(c)
			return
		}

		src, err := file.Open()
		if err != nil {
			ctx.Logger.Error("Failed to open uploaded file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		defer src.Close()

		summary, err := inference.NewExtractor().Extract(inference.NewCSVSource(src))
		if err != nil {
			if !errors.Is(err, inference.ErrEmptyInput) {
				ctx.Logger.Warn("Failed to parse uploaded file", zap.String("filename", file.Filename), zap.Error(err))
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty CSV or failed to parse"})
			return
		}

		name := c.PostForm("name")
		if name == "" {
			name = file.Filename
		}

		dataset := entity.Dataset{
			Name:     name,
			Columns:  summary.Columns,
			Sample:   summary.Sample,
			RowCount: summary.RowCount,
		}

		doc, err := entity.ToDocument(dataset)
		if err != nil {
			ctx.Logger.Error("Failed to encode dataset", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode dataset"})
			return
		}

		id, err := ctx.Store.Create(c.Request.Context(), CollectionDataset, doc)
		if err != nil {
			ctx.Logger.Error("Failed to store dataset", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store dataset"})
			return
		}

		dataset.ID = id
		c.JSON(http.StatusOK, dataset)
	}
}

// ListDatasets returns every stored dataset. Without a configured store it
// returns an empty list so a dependent UI can still load.
func ListDatasets(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			c.JSON(http.StatusOK, []any{})
			return
		}

		docs, err := ctx.Store.List(c.Request.Context(), CollectionDataset, nil)
		if err != nil {
			ctx.Logger.Error("Failed to list datasets", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list datasets"})
			return
		}

		c.JSON(http.StatusOK, docs)
	}
}

func GetDataset(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctx.Store == nil {
			storeUnavailable(c)
			return
		}

		doc, err := ctx.Store.FindOne(c.Request.Context(), CollectionDataset, c.Param("datasetID"))
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
			return
		}
		if err != nil {
			ctx.Logger.Error("Failed to get dataset", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dataset"})
			return
		}

		c.JSON(http.StatusOK, doc)
	}
}

func isCSVFile(file *multipart.FileHeader) bool {
	return strings.ToLower(filepath.Ext(file.Filename)) == ".csv"
}
