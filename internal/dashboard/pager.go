package dashboard

// DefaultPageSize matches the table page size used across all views.
const DefaultPageSize = 10

// Paginate returns the 1-based page of items. Pages concatenated in order
// reconstruct the input exactly; an out-of-range page is empty.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns how many pages of the given size the items span.
// An empty list still has one (empty) page.
func PageCount(n, size int) int {
	if size < 1 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage keeps the current page inside the valid range after the
// underlying list shrinks.
func clampPage(page, n, size int) int {
	if page < 1 {
		return 1
	}
	if max := PageCount(n, size); page > max {
		return max
	}
	return page
}
