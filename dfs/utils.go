// Package dfs provides small slice helpers shared by the sort and its checks.
package dfs

// Reverse reverses s in place.
// Time Complexity: O(n).
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf[T comparable](s []T, val T) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
