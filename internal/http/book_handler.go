package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/httpx"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/tracker"
)

// bookView is a catalog book with the user's annotation attached.
type bookView struct {
	catalog.Book
	Read   bool `json:"read"`
	Rating int  `json:"rating"`
}

func newBookView(b catalog.Book, a annotation.Annotation) bookView {
	return bookView{Book: b, Read: a.Read, Rating: a.Rating}
}

func bookViews(books []catalog.Book, ann *annotation.Store) []bookView {
	views := make([]bookView, len(books))
	for i, b := range books {
		views[i] = newBookView(b, ann.Get(b.ID))
	}
	return views
}

type BookHandler struct {
	cat *catalog.Catalog
	ann *annotation.Store
}

func NewBookHandler(cat *catalog.Catalog, ann *annotation.Store) *BookHandler {
	return &BookHandler{cat: cat, ann: ann}
}

// List handles GET /books with filter and sort query parameters.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status, err := tracker.ParseStatus(query.Get("status"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	key, err := tracker.ParseSortKey(query.Get("sort"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	dir, err := tracker.ParseDirection(query.Get("dir"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	sel := tracker.Selection{
		Status: status,
		Genre:  query.Get("genre"),
		Theme:  query.Get("theme"),
		Search: query.Get("search"),
	}

	books := tracker.Filter(h.cat.Books(), h.ann, sel)
	books = tracker.Sort(books, h.ann, key, dir)

	httpx.JSONSuccess(w, bookViews(books, h.ann), map[string]any{
		"total":   len(books),
		"catalog": h.cat.Len(),
	})
}

// GetByID handles GET /books/{id}.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	book, err := h.cat.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, newBookView(book, h.ann.Get(id)), nil)
}

// Filters handles GET /filters: the genre and theme values present in the
// catalog, for populating filter dropdowns.
func (h *BookHandler) Filters(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, map[string]any{
		"statuses": []tracker.Status{tracker.StatusAll, tracker.StatusRead, tracker.StatusUnread},
		"genres":   h.cat.Genres(),
		"themes":   h.cat.Themes(),
	}, nil)
}

// bookID parses the {id} path value, writing a 400 on malformed input.
func bookID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return 0, false
	}
	return id, true
}
