package annotation

import (
	"errors"
	"sync"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
)

var (
	// ErrUnknownBook is returned for ids outside the catalog.
	ErrUnknownBook = errors.New("unknown book id")
	// ErrInvalidRating is returned when a rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Annotation holds the user's state for one book. The zero value is the
// state of a book the user never touched.
type Annotation struct {
	Read   bool `json:"read"`
	Rating int  `json:"rating"`
}

// Store owns all annotations for a session. Entries are created lazily on
// first mutation and never removed; unmarking resets fields to defaults.
// Mutations are serialized so the rating-implies-read invariant holds even
// with concurrent HTTP requests.
type Store struct {
	mu      sync.RWMutex
	cat     *catalog.Catalog
	entries map[int]Annotation
}

// NewStore creates an empty annotation store bound to a catalog. The catalog
// decides which ids are valid mutation targets.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{cat: cat, entries: make(map[int]Annotation)}
}

// Get returns the annotation for id, or the zero annotation if none exists.
func (s *Store) Get(id int) Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[id]
}

// MarkRead flags the book as read. An existing rating is kept.
func (s *Store) MarkRead(id int) (Annotation, error) {
	if !s.cat.Contains(id) {
		return Annotation{}, ErrUnknownBook
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.entries[id]
	a.Read = true
	s.entries[id] = a
	return a, nil
}

// MarkUnread clears the read flag and the rating. An unread book cannot keep
// a stale rating.
func (s *Store) MarkUnread(id int) (Annotation, error) {
	if !s.cat.Contains(id) {
		return Annotation{}, ErrUnknownBook
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return Annotation{}, nil
	}
	s.entries[id] = Annotation{}
	return Annotation{}, nil
}

// SetRating stores a 1..5 rating and marks the book read. Clearing a rating
// goes through MarkUnread, not a zero rating.
func (s *Store) SetRating(id, rating int) (Annotation, error) {
	if rating < 1 || rating > 5 {
		return Annotation{}, ErrInvalidRating
	}
	if !s.cat.Contains(id) {
		return Annotation{}, ErrUnknownBook
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := Annotation{Read: true, Rating: rating}
	s.entries[id] = a
	return a, nil
}

// Snapshot returns a copy of all entries, the shape the persistence layer
// writes after every mutation.
func (s *Store) Snapshot() map[int]Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[int]Annotation, len(s.entries))
	for id, a := range s.entries {
		snap[id] = a
	}
	return snap
}

// Restore replaces the store contents with a persisted snapshot. Entries for
// ids no longer in the catalog are dropped, and the rating-implies-read
// invariant is re-applied in case the snapshot predates it.
func (s *Store) Restore(snap map[int]Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[int]Annotation, len(snap))
	for id, a := range snap {
		if !s.cat.Contains(id) {
			continue
		}
		if a.Rating < 0 || a.Rating > 5 {
			a.Rating = 0
		}
		if a.Rating > 0 {
			a.Read = true
		}
		if !a.Read {
			a.Rating = 0
		}
		s.entries[id] = a
	}
}
