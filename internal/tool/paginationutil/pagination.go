package paginationutil

// PaginationResult holds pagination metadata.
type PaginationResult struct {
	TotalCount int // Items before pagination
	Available  int // Items left after skipping offset
	Truncated  bool
}

// ApplyPagination skips offset items and then keeps at most limit items.
// A negative limit keeps everything after the offset; a negative offset is treated as zero.
// It handles bounds checking to prevent panics.
func ApplyPagination[T any](items []T, offset, limit int) ([]T, PaginationResult) {
	totalCount := len(items)
	start := max(offset, 0)
	if start > totalCount {
		start = totalCount
	}

	available := totalCount - start
	end := totalCount
	if limit >= 0 && start+limit < totalCount {
		end = start + limit
	}

	return items[start:end], PaginationResult{
		TotalCount: totalCount,
		Available:  available,
		Truncated:  end < totalCount,
	}
}
