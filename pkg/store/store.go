// Package store provides persistence for typeset documents.
//
// A [Record] pairs a document's manifest source with the page set produced
// from it, so that earlier runs can be fetched, re-rendered, or deleted
// later. The [Store] interface has two implementations:
//   - memory: in-memory storage for development and tests
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Production
//	st, err := store.NewMongoStore(ctx, store.MongoConfig{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Persist and retrieve records:
//
//	rec := store.New("report", source)
//	rec.Pages = &ps
//	if err := st.Save(ctx, rec); err != nil {
//	    return err
//	}
//
//	rec, err := st.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // No record with that ID.
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ahuangsnail/quire/pkg/pages"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Record is a persisted document: the manifest source it was built from
// and the page set that came out of the typesetting pipeline.
type Record struct {
	ID        string         `json:"id" bson:"_id"`
	Name      string         `json:"name,omitempty" bson:"name,omitempty"`
	Source    string         `json:"source" bson:"source"`
	Pages     *pages.PageSet `json:"pages,omitempty" bson:"pages,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// New creates a record for the given manifest source with a fresh ID.
func New(name, source string) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for record storage backends.
type Store interface {
	// Save persists a record, replacing any existing record with the same ID.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID.
	// Returns ErrNotFound if no record has the given ID.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, newest first.
	// Page sets are omitted from listed records.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record.
	// Returns ErrNotFound if no record has the given ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
