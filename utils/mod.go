package utils

// FindIndex returns the position of the first element of slice equal to item,
// or -1. Interface elements must hold comparable values.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is an element of slice.
func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}
