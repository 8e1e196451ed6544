// Package utils
package utils

import "math"

func ReverseForEach[T any](slice []T, f func(index int, value T)) {
	for i := len(slice) - 1; i >= 0; i-- {
		f(i, slice[i])
	}
}

// PageOffset returns the zero-based offset of the page-th window (1-based).
// ok is false for non-positive arguments or when the offset does not fit in an int.
func PageOffset(page, pageSize int) (offset int, ok bool) {
	if page <= 0 || pageSize <= 0 || page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

// Paginate returns the page-th window (1-based) of src, or an empty slice past the end
func Paginate[T any](src []T, page, pageSize int) []T {
	start, ok := PageOffset(page, pageSize)
	if !ok || start >= len(src) {
		return src[:0:0]
	}
	end := start + min(pageSize, len(src)-start)
	return src[start:end]
}
