// Package common holds the small generic helpers and error/log plumbing
// shared by every atomspace package.
package common

// Any reports whether p holds for at least one element of xs.
func Any[T any](p func(T) bool, xs []T) bool {
	for _, x := range xs {
		if p(x) {
			return true
		}
	}
	return false
}
