package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
)

// annotationsKey is the single key holding the full annotation snapshot,
// mirroring the one-entry layout the browser version kept in localStorage.
const annotationsKey = "annotations"

// OpenBadger opens the embedded database at path.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}

// AnnotationBadger persists annotation snapshots in badger. The whole store
// is written after every mutation and read back once at startup.
type AnnotationBadger struct {
	db *badger.DB
}

func NewAnnotationBadger(db *badger.DB) *AnnotationBadger {
	return &AnnotationBadger{db: db}
}

// SaveAnnotations writes a full snapshot.
func (s *AnnotationBadger) SaveAnnotations(snap map[int]annotation.Annotation) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode annotations: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(annotationsKey), data)
	})
	if err != nil {
		return fmt.Errorf("save annotations: %w", err)
	}
	return nil
}

// LoadAnnotations reads the last snapshot. Missing or unparseable data loads
// as an empty snapshot rather than an error; losing stale local state beats
// refusing to start.
func (s *AnnotationBadger) LoadAnnotations() (map[int]annotation.Annotation, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(annotationsKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = make([]byte, len(val))
			copy(data, val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return map[int]annotation.Annotation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}

	var snap map[int]annotation.Annotation
	if err := json.Unmarshal(data, &snap); err != nil {
		return map[int]annotation.Annotation{}, nil
	}
	return snap, nil
}
