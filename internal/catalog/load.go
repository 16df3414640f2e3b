package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Load reads a JSON book list from path and builds a catalog. The file holds
// a single array of book objects, the format the original books.json uses.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	cat, err := New(books)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}
