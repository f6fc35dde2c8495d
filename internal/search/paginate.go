package search

// DefaultPerPage is used when a caller asks for a non-positive page size.
const DefaultPerPage = 20

type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Pages   int  `json:"pages"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// Paginate slices out one page of items. Pages past the end are empty.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total := len(items)
	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)

	return Page[T]{
		Items:   append([]T{}, items[start:end]...),
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   (total + perPage - 1) / perPage,
		HasPrev: page > 1,
		HasNext: (page-1)*perPage+perPage < total,
	}
}
