// Package store is the single point of contact with the document database.
// Records of every kind live in one documents table, addressed by kind.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/andrewpaige1/studyapp-api/models"
)

var (
	// ErrUnavailable is returned by every operation of a gateway that has no
	// database behind it.
	ErrUnavailable = errors.New("store unavailable")
	// ErrNotFound is returned when a referenced document does not exist or
	// its identifier is not well-formed.
	ErrNotFound = errors.New("document not found")
)

// IDField is the record key holding the document identifier.
const IDField = "_id"

// Record is a stored document: its body fields plus IDField holding the
// identifier as a uuid.UUID.
type Record map[string]any

// Gateway owns the database handle. It is safe for concurrent use.
type Gateway struct {
	db   *gorm.DB
	name string
	err  error
}

// New wraps an open database handle.
func New(db *gorm.DB, name string) *Gateway {
	return &Gateway{db: db, name: name}
}

// Unavailable returns a gateway whose operations all fail with ErrUnavailable.
func Unavailable(reason error) *Gateway {
	err := ErrUnavailable
	if reason != nil {
		err = fmt.Errorf("%w: %v", ErrUnavailable, reason)
	}
	return &Gateway{err: err}
}

// Err reports why the gateway is unavailable, or nil.
func (g *Gateway) Err() error {
	return g.err
}

// Name is the configured database name.
func (g *Gateway) Name() string {
	return g.name
}

// CreateDocument inserts fields into the kind collection and returns the new identifier.
func (g *Gateway) CreateDocument(ctx context.Context, kind string, fields map[string]any) (string, error) {
	if g.err != nil {
		return "", g.err
	}

	if fields == nil {
		fields = map[string]any{}
	}
	doc := models.Document{
		Kind:   kind,
		Fields: datatypes.JSONMap(fields),
	}
	if err := g.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", fmt.Errorf("failed to insert %s document: %w", kind, err)
	}
	return doc.ID.String(), nil
}

// GetDocuments returns every document of kind whose fields equal all filter
// values. A nil or empty filter matches everything. Results are in insertion order.
func (g *Gateway) GetDocuments(ctx context.Context, kind string, filter map[string]any) ([]Record, error) {
	if g.err != nil {
		return nil, g.err
	}

	query := g.db.WithContext(ctx).Where("kind = ?", kind)

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		query = query.Where(datatypes.JSONQuery("fields").Equals(filter[k], k))
	}

	var docs []models.Document
	if err := query.Order("id").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s documents: %w", kind, err)
	}

	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toRecord(doc))
	}
	return records, nil
}

// GetDocument looks up one document of kind by identifier.
func (g *Gateway) GetDocument(ctx context.Context, kind, id string) (Record, error) {
	if g.err != nil {
		return nil, g.err
	}

	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc models.Document
	err = g.db.WithContext(ctx).Where("id = ? AND kind = ?", docID, kind).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s document %s: %w", kind, id, err)
	}
	return toRecord(doc), nil
}

// Ping checks that the database answers.
func (g *Gateway) Ping(ctx context.Context) error {
	if g.err != nil {
		return g.err
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Collections lists up to limit distinct kinds that hold documents, sorted.
func (g *Gateway) Collections(ctx context.Context, limit int) ([]string, error) {
	if g.err != nil {
		return nil, g.err
	}

	var kinds []string
	err := g.db.WithContext(ctx).
		Model(&models.Document{}).
		Distinct("kind").
		Order("kind").
		Limit(limit).
		Pluck("kind", &kinds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return kinds, nil
}

// Close releases the database handle.
func (g *Gateway) Close() error {
	if g.err != nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRecord(doc models.Document) Record {
	rec := make(Record, len(doc.Fields)+1)
	for k, v := range doc.Fields {
		rec[k] = v
	}
	rec[IDField] = doc.ID
	return rec
}

// Migrate creates or updates the documents table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return nil
}
