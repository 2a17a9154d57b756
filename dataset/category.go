package dataset

import "strings"

// LeafCategory reduces a hierarchical category path such as
// "Electronics > Audio > Headphones" to its most specific segment.
// A missing path yields UnknownCategory.
func LeafCategory(path string) string {
	segments := strings.Split(path, ">")
	for i := len(segments) - 1; i >= 0; i-- {
		if leaf := strings.TrimSpace(segments[i]); leaf != "" {
			return leaf
		}
	}
	return UnknownCategory
}
