package tracker

import "fmt"

// All disables a genre or theme predicate. An empty string does the same, so
// absent query parameters need no special casing at the boundary.
const All = "all"

// Status narrows the catalog by read state.
type Status string

const (
	StatusAll    Status = "all"
	StatusRead   Status = "read"
	StatusUnread Status = "unread"
)

// ParseStatus validates a status value from the boundary. Empty means all.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAll, StatusRead, StatusUnread:
		return Status(s), nil
	case "":
		return StatusAll, nil
	default:
		return "", fmt.Errorf("invalid status %q", s)
	}
}

// Selection holds one view's filter state. The zero value matches everything.
type Selection struct {
	Status Status
	Genre  string
	Theme  string
	Search string
}

// SortKey selects the comparison used by Sort.
type SortKey string

const (
	ByTitle  SortKey = "title"
	ByAuthor SortKey = "author"
	ByYear   SortKey = "year"
	ByRating SortKey = "rating"
)

// ParseSortKey validates a sort key from the boundary. Empty falls back to
// title, the default view order.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case ByTitle, ByAuthor, ByYear, ByRating:
		return SortKey(s), nil
	case "":
		return ByTitle, nil
	default:
		return "", fmt.Errorf("invalid sort key %q", s)
	}
}

// Direction orders ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection validates a sort direction. Empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Asc, Desc:
		return Direction(s), nil
	case "":
		return Asc, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", s)
	}
}
