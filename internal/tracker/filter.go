package tracker

import (
	"slices"
	"strings"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
)

// Filter returns the books matching every active predicate in sel, in catalog
// order. Books without an annotation count as unread.
func Filter(books []catalog.Book, ann AnnotationSource, sel Selection) []catalog.Book {
	search := strings.ToLower(sel.Search)

	var out []catalog.Book
	for _, b := range books {
		if !matchStatus(b, ann, sel.Status) {
			continue
		}
		if sel.Genre != "" && sel.Genre != All && b.Genre != sel.Genre {
			continue
		}
		if sel.Theme != "" && sel.Theme != All && !slices.Contains(b.Themes, sel.Theme) {
			continue
		}
		if search != "" && !matchSearch(b, search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchStatus(b catalog.Book, ann AnnotationSource, status Status) bool {
	switch status {
	case StatusRead:
		return ann.Get(b.ID).Read
	case StatusUnread:
		return !ann.Get(b.ID).Read
	default:
		return true
	}
}

func matchSearch(b catalog.Book, search string) bool {
	return strings.Contains(strings.ToLower(b.Title), search) ||
		strings.Contains(strings.ToLower(b.Author), search)
}
