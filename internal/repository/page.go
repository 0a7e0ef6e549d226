package repository

// DefaultPerPage matches the page size the browsing screens request.
const DefaultPerPage = 5

// Page is the result of a clamped, relation-loaded pagination query.
type Page[T any] struct {
	Data       []T
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}
