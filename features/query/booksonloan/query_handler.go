package booksonloan

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/library"
)

// Library defines the interface needed by the QueryHandler.
type Library interface {
	ReportOnLoan() []library.BookOnLoan
}

// QueryHandler reports the books on loan.
type QueryHandler struct {
	library Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(lib Library) QueryHandler {
	return QueryHandler{library: lib}
}

// Handle builds the report.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (BooksOnLoan, error) {
	if err := ctx.Err(); err != nil {
		return BooksOnLoan{}, err
	}

	return ProjectBooksOnLoan(h.library.ReportOnLoan()), nil
}
