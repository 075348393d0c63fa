package registeredpatrons

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// PatronInfo is one row of the report.
type PatronInfo struct {
	Patron    core.Patron
	LoanCount int
}

// RegisteredPatrons represents the query result containing all patrons.
type RegisteredPatrons struct {
	Patrons []PatronInfo
	Count   int
}

// ResultCount returns the number of patrons in the report.
func (r RegisteredPatrons) ResultCount() int {
	return r.Count
}
