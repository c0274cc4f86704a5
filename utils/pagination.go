package utils

import "errors"

const QuestionsPerPage = 10

var ErrInvalidPage = errors.New("page must be 1 or greater")

// Paginate returns items[(page-1)*size : page*size], clamped to the slice
// bounds. A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) ([]T, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if size < 1 {
		size = QuestionsPerPage
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}, nil
	}
	end := min(start+size, len(items))
	return items[start:end], nil
}
