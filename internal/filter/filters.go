package filter

import "github.com/siahsang/blogfront/internal/validator"

type Filter struct {
	Limit  int64
	Offset int64
}

type Metadata struct {
	Total  int64 `json:"total"`
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

func NewFilter(limit, offset int64) Filter {
	return Filter{
		Limit:  limit,
		Offset: offset,
	}
}

func ValidateFilters(filters Filter, v *validator.Validator) {
	v.Check(filters.Limit > 0, "limit", "must be greater than 0")
	v.Check(filters.Limit <= 100, "limit", "must be a maximum of 100")
	v.Check(filters.Offset >= 0, "offset", "must be greater than or equal to 0")
	v.Check(filters.Offset <= 10_000_000, "offset", "must be a maximum of 10_000_000")
}

// Paginate returns the window of items selected by filters together with the
// metadata describing it.
func Paginate[T any](items []T, filters Filter) ([]T, Metadata) {
	total := int64(len(items))
	metadata := Metadata{Total: total, Limit: filters.Limit, Offset: filters.Offset}

	if filters.Offset >= total {
		return []T{}, metadata
	}
	end := min(filters.Offset+filters.Limit, total)

	return items[filters.Offset:end], metadata
}
