package handlers

import (
	"context"

	"github.com/andrewpaige1/studyapp-api/store"
)

//go:generate mockgen -source=store.go -destination=../mocks/store/mock_store.go -package=mock_store

// DocumentStore is the storage the handlers need. *store.Gateway implements it.
type DocumentStore interface {
	Err() error
	Name() string
	CreateDocument(ctx context.Context, kind string, fields map[string]any) (string, error)
	GetDocuments(ctx context.Context, kind string, filter map[string]any) ([]store.Record, error)
	GetDocument(ctx context.Context, kind, id string) (store.Record, error)
	Ping(ctx context.Context) error
	Collections(ctx context.Context, limit int) ([]string, error)
}

type DBHandler struct {
	Store DocumentStore
	// Getenv reports process environment variables for diagnostics.
	Getenv func(string) string
}
