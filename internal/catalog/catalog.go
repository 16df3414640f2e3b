package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a book id is not in the catalog.
var ErrNotFound = errors.New("book not found")

// Book is a single catalog entry. The catalog is loaded once at startup and
// never mutated afterwards.
type Book struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Year        int      `json:"year"`
	Genre       string   `json:"genre"`
	Themes      []string `json:"themes"`
	Description string   `json:"description,omitempty"`
	CoverURL    string   `json:"coverUrl,omitempty"`
}

// Catalog is an immutable, ordered collection of books with id lookup.
type Catalog struct {
	books []Book
	index map[int]int
}

// New builds a catalog from an ordered book list. Ids must be unique.
func New(books []Book) (*Catalog, error) {
	index := make(map[int]int, len(books))
	for i, b := range books {
		if _, dup := index[b.ID]; dup {
			return nil, fmt.Errorf("duplicate book id %d", b.ID)
		}
		index[b.ID] = i
	}
	return &Catalog{books: books, index: index}, nil
}

// Books returns the catalog in load order. Callers must not modify the
// returned slice.
func (c *Catalog) Books() []Book {
	return c.books
}

// ByID returns the book with the given id.
func (c *Catalog) ByID(id int) (Book, error) {
	i, ok := c.index[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return c.books[i], nil
}

// Contains reports whether id is a catalog entry.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Genres returns the distinct genres present in the catalog, sorted.
func (c *Catalog) Genres() []string {
	return c.distinct(func(b Book) []string { return []string{b.Genre} })
}

// Themes returns the distinct themes present in the catalog, sorted.
func (c *Catalog) Themes() []string {
	return c.distinct(func(b Book) []string { return b.Themes })
}

func (c *Catalog) distinct(values func(Book) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range c.books {
		for _, v := range values(b) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
