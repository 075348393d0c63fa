package searchbooks

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// ProjectSearchResult builds the SearchResult for the query from the matching books.
func ProjectSearchResult(query Query, books []core.Book) SearchResult {
	if books == nil {
		books = []core.Book{}
	}

	return SearchResult{
		Field: string(query.Field),
		Text:  query.Text,
		Books: books,
		Count: len(books),
	}
}
