package searchbooks

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// SearchResult holds the matching books in catalog order.
type SearchResult struct {
	Field string
	Text  string
	Books []core.Book
	Count int
}

// ResultCount returns the number of matching books.
func (r SearchResult) ResultCount() int {
	return r.Count
}
