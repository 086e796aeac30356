package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulseanalytics/pulse/internal/apperrors"
)

// payload maps a document onto a jsonb column.
type payload map[string]any

func (p payload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *payload) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// Document is the single table backing every collection.
type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Collection string    `gorm:"type:varchar(64);not null;index"`
	Data       payload   `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
}

// PostgresStore persists documents in a gorm-managed postgres table,
// filtering with jsonb field lookups.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Create(ctx context.Context, collection string, doc map[string]any) (string, error) {
	record := Document{
		ID:         uuid.New(),
		Collection: collection,
		Data:       payload(doc),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to create document in %q: %w", collection, err)
	}
	return record.ID.String(), nil
}

func (s *PostgresStore) List(ctx context.Context, collection string, filter map[string]any) ([]map[string]any, error) {
	query := s.db.WithContext(ctx).Where("collection = ?", collection).Order("created_at")
	for key, value := range filter {
		query = query.Where("data ->> ? = ?", key, fmt.Sprint(value))
	}

	var records []Document
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents in %q: %w", collection, err)
	}

	docs := make([]map[string]any, 0, len(records))
	for _, record := range records {
		docs = append(docs, withID(record.Data, record.ID.String()))
	}
	return docs, nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, id string) (map[string]any, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var record Document
	err = s.db.WithContext(ctx).Where("collection = ? AND id = ?", collection, parsed).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s in %q: %w", id, collection, err)
	}

	return withID(record.Data, record.ID.String()), nil
}

func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&Document{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// withID copies a stored payload and attaches the row id under "id".
func withID(data payload, id string) map[string]any {
	doc := make(map[string]any, len(data)+1)
	for k, v := range data {
		doc[k] = v
	}
	doc["id"] = id
	return doc
}
