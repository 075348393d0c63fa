package registeredpatrons

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// Library defines the interface needed by the QueryHandler.
type Library interface {
	ReportPatrons() []core.Patron
}

// QueryHandler reports the registered patrons.
type QueryHandler struct {
	library Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(lib Library) QueryHandler {
	return QueryHandler{library: lib}
}

// Handle builds the report.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (RegisteredPatrons, error) {
	if err := ctx.Err(); err != nil {
		return RegisteredPatrons{}, err
	}

	return ProjectRegisteredPatrons(h.library.ReportPatrons()), nil
}
