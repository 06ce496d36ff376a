package domain

// Page is the uniform paginated result shape returned by the registry and
// the catalog search. TotalPages is ceil(TotalItems / limit).
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int
}

// NewPage assembles a Page from one result window.
// A non-positive limit yields zero TotalPages to avoid division by zero;
// callers validate limits before querying.
func NewPage[T any](items []T, page, limit, total int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Page[T]{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
