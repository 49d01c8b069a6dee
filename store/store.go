// Package store owns the tracker document: the normalization pass that
// keeps its cross-references consistent, the seed generator, and the
// load/save gate every mutation funnels through.
package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/storage"
)

// Store is the load/save gate over the persisted document. All mutation
// paths go through Save, so no caller can persist a cross-reference that
// has not been normalized.
type Store struct {
	storage storage.Storage
	logger  *log.Logger
	mu      sync.Mutex
}

func New(st storage.Storage, logger *log.Logger) *Store {
	return &Store{storage: st, logger: logger}
}

// Load returns the persisted document, normalized. Absent, unparsable or
// structurally incomplete persisted text is never an error: the caller
// gets a fresh seed document instead.
func (s *Store) Load() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() *models.Document {
	data, err := s.storage.Get()
	if err != nil {
		s.logger.Printf("Failed to read persisted document, falling back to seed: %v", err)
		return Seed()
	}
	if data == nil {
		s.logger.Println("No persisted document found, starting from seed")
		return Seed()
	}
	if !hasAllCollections(data) {
		s.logger.Println("Persisted document is missing collections, falling back to seed")
		return Seed()
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		s.logger.Printf("Persisted document is not valid JSON, falling back to seed: %v", err)
		return Seed()
	}
	return Normalize(doc)
}

// Save normalizes doc, persists it and returns the normalized form, so
// the caller's in-memory copy and the persisted copy never diverge.
func (s *Store) Save(doc *models.Document) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *Store) save(doc *models.Document) (*models.Document, error) {
	doc.Meta.UpdatedAt = time.Now()
	normalized := Normalize(doc)
	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Set(data); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Apply loads the document, runs fn against it and persists the result.
// When fn returns an error nothing is written. This is the single
// mutation entry point the HTTP layer uses.
func (s *Store) Apply(fn func(*models.Document) error) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return nil, err
	}
	return s.save(doc)
}

// ImportJSON replaces the persisted document with an uploaded one. A
// payload missing any of the four collections is rejected with no state
// change; anything else goes through the normalization gate.
func (s *Store) ImportJSON(data []byte) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	if !hasAllCollections(data) {
		return nil, ErrMissingCollections
	}
	return s.save(doc)
}
