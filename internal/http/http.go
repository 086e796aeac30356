package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulseanalytics/pulse/internal/appcontext"
	"github.com/pulseanalytics/pulse/internal/apperrors"
	"github.com/pulseanalytics/pulse/internal/http/middleware"
)

// Collection names used by the handlers.
const (
	CollectionDataset   = "dataset"
	CollectionInsight   = "insight"
	CollectionChart     = "chart"
	CollectionDashboard = "dashboard"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	h.engine.GET("/", Root())
	h.engine.GET("/health", Health(h.context))

	v1 := h.engine.Group("/api/v1")
	h.setupDatasetRoutes(v1)
	h.setupInsightRoutes(v1)
	h.setupChartRoutes(v1)
	h.setupDashboardRoutes(v1)
}

func (h *APIService) setupDatasetRoutes(group *gin.RouterGroup) {
	datasets := group.Group("/datasets")

	datasets.POST("", UploadDataset(h.context))
	datasets.GET("", ListDatasets(h.context))
	datasets.GET("/:datasetID", GetDataset(h.context))
}

func (h *APIService) setupInsightRoutes(group *gin.RouterGroup) {
	insights := group.Group("/insights")

	insights.POST("/:datasetID", GenerateInsights(h.context))
}

func (h *APIService) setupChartRoutes(group *gin.RouterGroup) {
	charts := group.Group("/charts")

	charts.POST("", SaveChart(h.context))
	charts.GET("", ListCharts(h.context))
}

func (h *APIService) setupDashboardRoutes(group *gin.RouterGroup) {
	dashboards := group.Group("/dashboards")

	dashboards.POST("", CreateDashboard(h.context))
	dashboards.GET("", ListDashboards(h.context))
}

// storeUnavailable rejects a request that needs the document store while the
// server runs in degraded mode.
func storeUnavailable(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrStoreUnavailable.Error()})
}
