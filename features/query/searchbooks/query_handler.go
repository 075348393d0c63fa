package searchbooks

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/library"
)

// Library defines the interface needed by the QueryHandler.
type Library interface {
	Search(field library.SearchField, query string) []core.Book
}

// QueryHandler searches the catalog.
type QueryHandler struct {
	library Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(lib Library) QueryHandler {
	return QueryHandler{library: lib}
}

// Handle runs the search.
func (h QueryHandler) Handle(ctx context.Context, query Query) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	return ProjectSearchResult(query, h.library.Search(query.Field, query.Text)), nil
}
