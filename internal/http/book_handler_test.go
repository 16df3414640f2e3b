package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Themes: []string{"space"}},
		{ID: 2, Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937, Genre: "Fantasy", Themes: []string{"adventure", "magic"}},
		{ID: 3, Title: "Sabriel", Author: "Garth Nix", Year: 1995, Genre: "Fantasy", Themes: []string{"magic", "coming-of-age"}},
	})
	require.NoError(t, err)
	return cat
}

func decodeBooks(t *testing.T, w *httptest.ResponseRecorder) []bookView {
	t.Helper()
	var resp struct {
		Success bool       `json:"success"`
		Data    []bookView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestBookHandler_List(t *testing.T) {
	cat := testCatalog(t)
	ann := annotation.NewStore(cat)
	_, err := ann.SetRating(2, 5)
	require.NoError(t, err)
	handler := NewBookHandler(cat, ann)

	t.Run("default ordering is title asc", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		require.Equal(t, http.StatusOK, w.Code)
		books := decodeBooks(t, w)
		require.Len(t, books, 3)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Sabriel", books[1].Title)
		assert.Equal(t, "The Hobbit", books[2].Title)
	})

	t.Run("annotations are attached", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books?search=hobbit", nil))

		books := decodeBooks(t, w)
		require.Len(t, books, 1)
		assert.True(t, books[0].Read)
		assert.Equal(t, 5, books[0].Rating)
	})

	t.Run("filter and sort combine", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books?genre=Fantasy&sort=year&dir=desc", nil))

		books := decodeBooks(t, w)
		require.Len(t, books, 2)
		assert.Equal(t, "Sabriel", books[0].Title)
		assert.Equal(t, "The Hobbit", books[1].Title)
	})

	t.Run("status filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books?status=unread", nil))

		books := decodeBooks(t, w)
		require.Len(t, books, 2)
		for _, b := range books {
			assert.False(t, b.Read)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books?status=finished", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid sort key", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books?sort=pages", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_GetByID(t *testing.T) {
	cat := testCatalog(t)
	ann := annotation.NewStore(cat)
	handler := NewBookHandler(cat, ann)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/1", nil)
		r.SetPathValue("id", "1")

		handler.GetByID(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/99", nil)
		r.SetPathValue("id", "99")

		handler.GetByID(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/abc", nil)
		r.SetPathValue("id", "abc")

		handler.GetByID(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_Filters(t *testing.T) {
	cat := testCatalog(t)
	handler := NewBookHandler(cat, annotation.NewStore(cat))

	w := httptest.NewRecorder()
	handler.Filters(w, httptest.NewRequest(http.MethodGet, "/filters", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Genres []string `json:"genres"`
			Themes []string `json:"themes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Fantasy", "Sci-Fi"}, resp.Data.Genres)
	assert.Contains(t, resp.Data.Themes, "coming-of-age")
}
