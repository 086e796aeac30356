package appcontext

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pulseanalytics/pulse/internal/store"
)

// Context carries the shared dependencies handlers need. Store is nil when
// DATABASE_URL is not configured; handlers degrade rather than crash.
type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger
	Store  store.Store
}
