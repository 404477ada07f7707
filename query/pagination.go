package query

// Page is the pagination envelope returned by every list operation.
// TotalCount is counted independently from Items, so under concurrent writes
// the two may briefly disagree.
type Page[T any] struct {
	PagesCount int   `json:"pagesCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Items      []T   `json:"items"`
}

// Skip converts a 1-based page number and a page size into a skip offset.
// Inputs are validated upstream; no clamping is done here.
func Skip(pageNumber, pageSize int) int64 {
	return int64(pageNumber-1) * int64(pageSize)
}

// NewPage wraps items into a Page, computing pagesCount as ceil(total/pageSize).
func NewPage[T any](pageNumber, pageSize int, items []T, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		PagesCount: pagesCount(totalCount, pageSize),
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		Items:      items,
	}
}

func pagesCount(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalCount + size - 1) / size)
}
