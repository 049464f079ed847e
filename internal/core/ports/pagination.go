package ports

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// PageRequest selects a window of a collection ordered by storage identity.
// Cursor is the id of the last item of the previous page; empty starts from
// the beginning.
type PageRequest struct {
	Cursor string
	Limit  int
}

// Normalized clamps the limit into [1, MaxPageLimit].
func (p PageRequest) Normalized() PageRequest {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	return p
}

// Page is one window of results. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T
	NextCursor string
}
