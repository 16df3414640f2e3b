package tracker

import (
	"sort"

	"github.com/JustJazzzmine/YA-book-recommendation-system/internal/catalog"
)

// Options tunes the recommendation scoring.
type Options struct {
	// GenreWeight multiplies genre matches; a genre hit counts this many
	// times as much as a single theme hit.
	GenreWeight int
	// MinSeedRating is the lowest rating that marks a book as a preference
	// signal.
	MinSeedRating int
	// MaxResults caps the returned list.
	MaxResults int
}

// DefaultOptions returns the scoring used by the original tracker: genre
// triple-weighted, seeds rated 4+, top 6 results.
func DefaultOptions() Options {
	return Options{GenreWeight: 3, MinSeedRating: 4, MaxResults: 6}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.GenreWeight <= 0 {
		o.GenreWeight = def.GenreWeight
	}
	if o.MinSeedRating <= 0 {
		o.MinSeedRating = def.MinSeedRating
	}
	if o.MaxResults <= 0 {
		o.MaxResults = def.MaxResults
	}
	return o
}

type scored struct {
	book  catalog.Book
	score int
}

// Recommend scores unread books against the genres and themes of highly rated
// ones and returns the best matches, highest score first. Ties keep catalog
// order. Without any highly rated book there is no signal and the result is
// empty.
func Recommend(books []catalog.Book, ann AnnotationSource, opts Options) []catalog.Book {
	opts = opts.withDefaults()

	genreWeight := make(map[string]int)
	themeWeight := make(map[string]int)
	var seeds int
	for _, b := range books {
		a := ann.Get(b.ID)
		if !a.Read || a.Rating < opts.MinSeedRating {
			continue
		}
		seeds++
		genreWeight[b.Genre]++
		seen := make(map[string]bool, len(b.Themes))
		for _, t := range b.Themes {
			if seen[t] {
				continue
			}
			seen[t] = true
			themeWeight[t]++
		}
	}
	if seeds == 0 {
		return nil
	}

	var candidates []scored
	for _, b := range books {
		if ann.Get(b.ID).Read {
			continue
		}
		score := opts.GenreWeight * genreWeight[b.Genre]
		for _, t := range b.Themes {
			score += themeWeight[t]
		}
		if score == 0 {
			continue
		}
		candidates = append(candidates, scored{book: b, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > opts.MaxResults {
		candidates = candidates[:opts.MaxResults]
	}
	out := make([]catalog.Book, len(candidates))
	for i, c := range candidates {
		out[i] = c.book
	}
	return out
}
