package views

import "fmt"

// Page wraps one slice of an ordered, fully-joined result set together with
// pagination metadata. Totals are always computed over the filtered result
// set before slicing, never over the raw source collection.
type Page[T any] struct {
	Items      []T  `json:"items"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate slices ordered results into the requested page. A page past the
// end yields empty items with correct metadata; non-positive page or limit
// is a caller error.
func Paginate[T any](items []T, page, limit int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, fmt.Errorf("%w: page must be a positive integer", ErrInvalidInput)
	}
	if limit < 1 {
		return Page[T]{}, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidInput)
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	slice := []T{}
	if start < total {
		end := start + limit
		if end > total {
			end = total
		}
		slice = items[start:end]
	}

	return Page[T]{
		Items:      slice,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
