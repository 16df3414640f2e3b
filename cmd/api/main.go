package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/annotation"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
	apphttp "github.com/JustJazzzmine/YA-book-recommendation-system/internal/http"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/httpx"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/store"
	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/tracker"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	serverAddress := getEnv("APP_ADDR", ":8080")
	catalogPath := getEnv("CATALOG_PATH", "books.json")
	dataDir := getEnv("DATA_DIR", "data")
	corsOrigins := splitEnv("CORS_ORIGINS")
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 10)
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 20)

	recommendOpts := tracker.DefaultOptions()
	recommendOpts.GenreWeight = getEnvInt("RECOMMEND_GENRE_WEIGHT", recommendOpts.GenreWeight)
	recommendOpts.MaxResults = getEnvInt("RECOMMEND_MAX_RESULTS", recommendOpts.MaxResults)

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", catalogPath).Msg("load catalog")
	}
	logger.Info().Int("books", cat.Len()).Msg("catalog loaded")

	db, err := store.OpenBadger(dataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", dataDir).Msg("open annotation store")
	}
	defer db.Close()

	annotationRepo := store.NewAnnotationBadger(db)
	annotations := annotation.NewStore(cat)
	snap, err := annotationRepo.LoadAnnotations()
	if err != nil {
		logger.Warn().Err(err).Msg("load annotations failed, starting empty")
	} else {
		annotations.Restore(snap)
		logger.Info().Int("entries", len(snap)).Msg("annotations restored")
	}

	bookHandler := apphttp.NewBookHandler(cat, annotations)
	annotationHandler := apphttp.NewAnnotationHandler(annotations, annotationRepo, logger)
	recommendationHandler := apphttp.NewRecommendationHandler(cat, annotations, recommendOpts)

	router := newRouter(db, bookHandler, annotationHandler, recommendationHandler)

	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)
	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", serverAddress).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func newRouter(db *badger.DB, books *apphttp.BookHandler, annotations *apphttp.AnnotationHandler, recommendations *apphttp.RecommendationHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.View(func(txn *badger.Txn) error { return nil }); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", books.List)
	router.HandleFunc("GET /books/{id}", books.GetByID)
	router.HandleFunc("GET /filters", books.Filters)

	router.HandleFunc("POST /books/{id}/read", annotations.MarkRead)
	router.HandleFunc("DELETE /books/{id}/read", annotations.MarkUnread)
	router.HandleFunc("PUT /books/{id}/rating", annotations.SetRating)

	router.HandleFunc("GET /recommendations", recommendations.Recommendations)
	router.HandleFunc("GET /stats", recommendations.Stats)

	return router
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
