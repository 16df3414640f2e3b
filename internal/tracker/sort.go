package tracker

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
)

// Sort returns a new slice ordered by key and direction. The sort is stable:
// equal keys keep their relative input order. Descending flips the comparator
// rather than reversing the output, so tie order survives either direction.
func Sort(books []catalog.Book, ann AnnotationSource, key SortKey, dir Direction) []catalog.Book {
	out := make([]catalog.Book, len(books))
	copy(out, books)

	cmp := comparator(ann, key)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

func comparator(ann AnnotationSource, key SortKey) func(a, b catalog.Book) int {
	switch key {
	case ByTitle:
		col := collate.New(language.English)
		return func(a, b catalog.Book) int { return col.CompareString(a.Title, b.Title) }
	case ByAuthor:
		col := collate.New(language.English)
		return func(a, b catalog.Book) int { return col.CompareString(a.Author, b.Author) }
	case ByYear:
		return func(a, b catalog.Book) int { return a.Year - b.Year }
	case ByRating:
		return func(a, b catalog.Book) int { return ann.Get(a.ID).Rating - ann.Get(b.ID).Rating }
	default:
		// Unknown keys are a caller bug; ParseSortKey guards the boundary.
		panic("tracker: unknown sort key " + string(key))
	}
}
