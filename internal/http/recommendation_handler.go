package http

import (
	"net/http"
	"strconv"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/httpx"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/tracker"
)

type RecommendationHandler struct {
	cat  *catalog.Catalog
	ann  *annotation.Store
	opts tracker.Options
}

func NewRecommendationHandler(cat *catalog.Catalog, ann *annotation.Store, opts tracker.Options) *RecommendationHandler {
	return &RecommendationHandler{cat: cat, ann: ann, opts: opts}
}

// Recommendations handles GET /recommendations. An empty list is a normal
// outcome when nothing is rated 4 or higher yet.
func (h *RecommendationHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	opts := h.opts
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 50 {
			httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be between 1 and 50", nil)
			return
		}
		opts.MaxResults = limit
	}

	books := tracker.Recommend(h.cat.Books(), h.ann, opts)
	httpx.JSONSuccess(w, bookViews(books, h.ann), map[string]any{
		"total": len(books),
	})
}

// Stats handles GET /stats.
func (h *RecommendationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, h.ann.Stats(), nil)
}
