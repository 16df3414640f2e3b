package http

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/httpx"
)

// Saver persists an annotation snapshot. Every successful mutation is saved
// before the response is written, so a reload always sees the latest state.
type Saver interface {
	SaveAnnotations(snap map[int]annotation.Annotation) error
}

type AnnotationHandler struct {
	ann    *annotation.Store
	saver  Saver
	logger zerolog.Logger
}

func NewAnnotationHandler(ann *annotation.Store, saver Saver, logger zerolog.Logger) *AnnotationHandler {
	return &AnnotationHandler{ann: ann, saver: saver, logger: logger}
}

// MarkRead handles POST /books/{id}/read.
func (h *AnnotationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, id, func() (annotation.Annotation, error) {
		return h.ann.MarkRead(id)
	})
}

// MarkUnread handles DELETE /books/{id}/read. Clearing the read flag also
// clears the rating.
func (h *AnnotationHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, id, func() (annotation.Annotation, error) {
		return h.ann.MarkUnread(id)
	})
}

type setRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// SetRating handles PUT /books/{id}/rating. Rating a book marks it read.
func (h *AnnotationHandler) SetRating(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	var input setRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	h.mutate(w, r, id, func() (annotation.Annotation, error) {
		return h.ann.SetRating(id, input.Rating)
	})
}

// mutate runs one annotation operation, persists the snapshot, and responds
// with the updated annotation.
func (h *AnnotationHandler) mutate(w http.ResponseWriter, r *http.Request, id int, op func() (annotation.Annotation, error)) {
	a, err := op()
	if err != nil {
		switch {
		case errors.Is(err, annotation.ErrUnknownBook):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, annotation.ErrInvalidRating):
			httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	if err := h.saver.SaveAnnotations(h.ann.Snapshot()); err != nil {
		h.logger.Error().Err(err).Int("book_id", id).Msg("persist annotations")
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to persist changes", nil)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"id":     id,
		"read":   a.Read,
		"rating": a.Rating,
	}, nil)
}
