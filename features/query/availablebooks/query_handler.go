package availablebooks

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// Library defines the interface needed by the QueryHandler.
type Library interface {
	ReportAvailable() []core.Book
}

// QueryHandler reports the available books.
type QueryHandler struct {
	library Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(lib Library) QueryHandler {
	return QueryHandler{library: lib}
}

// Handle builds the report.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (AvailableBooks, error) {
	if err := ctx.Err(); err != nil {
		return AvailableBooks{}, err
	}

	return ProjectAvailableBooks(h.library.ReportAvailable()), nil
}
