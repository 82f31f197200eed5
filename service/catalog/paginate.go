package catalog

// Page is one slice of an ordered result with the totals of the whole set.
type Page[T any] struct {
	Items       []T `json:"items"`
	TotalCount  int `json:"totalCount"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// Paginate returns items[(page-1)*size : page*size]. page is raised to 1 and
// size is clamped to [1, maxSize]; maxSize <= 0 disables the upper bound.
// A page past the end has no items but keeps the totals.
func Paginate[T any](items []T, page, size, maxSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	total := len(items)
	out := Page[T]{
		Items:       []T{},
		TotalCount:  total,
		CurrentPage: page,
		PageSize:    size,
		TotalPages:  (total + size - 1) / size,
	}
	// checked before multiplying so a huge page cannot overflow
	if page-1 >= out.TotalPages {
		return out
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	out.Items = items[start:end]
	return out
}

// MapPage converts the items of p, keeping its totals.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return Page[U]{
		Items:       items,
		TotalCount:  p.TotalCount,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
	}
}
