package activeloans

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/library"
)

// Library defines the interface needed by the QueryHandler.
type Library interface {
	ReportActiveLoans() []library.ActiveLoan
}

// QueryHandler reports the active loans.
type QueryHandler struct {
	library Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(lib Library) QueryHandler {
	return QueryHandler{library: lib}
}

// Handle builds the report.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (ActiveLoans, error) {
	if err := ctx.Err(); err != nil {
		return ActiveLoans{}, err
	}

	return ProjectActiveLoans(h.library.ReportActiveLoans()), nil
}
