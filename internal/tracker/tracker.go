// Package tracker implements the filtering, sorting, and recommendation
// engines over the book catalog and the user's annotations. All functions are
// pure: they take the catalog slice and an annotation source, return new
// slices, and never touch shared state.
package tracker

import (
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
)

// AnnotationSource supplies per-book user state. *annotation.Store satisfies
// it; tests can use any map-backed stand-in.
type AnnotationSource interface {
	Get(id int) annotation.Annotation
}
