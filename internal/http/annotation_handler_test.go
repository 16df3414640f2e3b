package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
)

// fakeSaver records snapshot writes and can simulate persistence failure.
type fakeSaver struct {
	saves int
	last  map[int]annotation.Annotation
	fail  bool
}

func (f *fakeSaver) SaveAnnotations(snap map[int]annotation.Annotation) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.saves++
	f.last = snap
	return nil
}

func annotationFixture(t *testing.T) (*AnnotationHandler, *annotation.Store, *fakeSaver) {
	t.Helper()
	cat := testCatalog(t)
	ann := annotation.NewStore(cat)
	saver := &fakeSaver{}
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewAnnotationHandler(ann, saver, logger), ann, saver
}

func pathRequest(method, path, id, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	r.SetPathValue("id", id)
	return r
}

func TestAnnotationHandler_MarkRead(t *testing.T) {
	handler, ann, saver := annotationFixture(t)

	w := httptest.NewRecorder()
	handler.MarkRead(w, pathRequest(http.MethodPost, "/books/1/read", "1", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ann.Get(1).Read)
	assert.Equal(t, 1, saver.saves, "snapshot persisted after the mutation")
	assert.True(t, saver.last[1].Read)

	t.Run("unknown book", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.MarkRead(w, pathRequest(http.MethodPost, "/books/99/read", "99", ""))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnnotationHandler_MarkUnread(t *testing.T) {
	handler, ann, _ := annotationFixture(t)
	_, err := ann.SetRating(1, 5)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.MarkUnread(w, pathRequest(http.MethodDelete, "/books/1/read", "1", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, annotation.Annotation{}, ann.Get(1))
}

func TestAnnotationHandler_SetRating(t *testing.T) {
	handler, ann, saver := annotationFixture(t)

	t.Run("valid rating marks read", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SetRating(w, pathRequest(http.MethodPut, "/books/2/rating", "2", `{"rating":4}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, annotation.Annotation{Read: true, Rating: 4}, ann.Get(2))
		assert.Equal(t, 1, saver.saves)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{"rating":-1}`} {
			w := httptest.NewRecorder()
			handler.SetRating(w, pathRequest(http.MethodPut, "/books/2/rating", "2", body))
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SetRating(w, pathRequest(http.MethodPut, "/books/2/rating", "2", `{rating`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown book", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SetRating(w, pathRequest(http.MethodPut, "/books/99/rating", "99", `{"rating":3}`))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnnotationHandler_PersistenceFailure(t *testing.T) {
	handler, _, saver := annotationFixture(t)
	saver.fail = true

	w := httptest.NewRecorder()
	handler.MarkRead(w, pathRequest(http.MethodPost, "/books/1/read", "1", ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
