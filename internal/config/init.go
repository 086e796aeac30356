package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pulseanalytics/pulse/internal/appcontext"
	"github.com/pulseanalytics/pulse/internal/store"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	db, err := InitDB(logger)
	if err != nil {
		return nil, err
	}

	var docStore store.Store
	if db != nil {
		docStore, err = store.NewPostgresStore(db)
		if err != nil {
			return nil, err
		}
	}

	ctx := &appcontext.Context{
		DB:     db,
		Logger: logger,
		Store:  docStore,
	}

	return ctx, nil
}

// InitDB connects to postgres when DATABASE_URL is set. When it is not, the
// server starts without a store and serves in degraded mode.
func InitDB(logger *zap.Logger) (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Warn("DATABASE_URL not set, starting without a document store")
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
