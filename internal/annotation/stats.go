package annotation

// Stats summarizes the user's reading history.
type Stats struct {
	Read          int     `json:"read"`
	Unread        int     `json:"unread"`
	AverageRating float64 `json:"average_rating"`
}

// Stats computes read/unread counts against the catalog size and the average
// rating over read, rated books. The average is 0 when nothing is rated.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var read, rated, sum int
	for _, a := range s.entries {
		if !a.Read {
			continue
		}
		read++
		if a.Rating > 0 {
			rated++
			sum += a.Rating
		}
	}

	out := Stats{Read: read, Unread: s.cat.Len() - read}
	if rated > 0 {
		out.AverageRating = float64(sum) / float64(rated)
	}
	return out
}
