package registeredpatrons

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// ProjectRegisteredPatrons builds the report.
func ProjectRegisteredPatrons(patrons []core.Patron) RegisteredPatrons {
	result := RegisteredPatrons{Patrons: make([]PatronInfo, 0, len(patrons))}

	for _, patron := range patrons {
		result.Patrons = append(result.Patrons, PatronInfo{Patron: patron, LoanCount: patron.LoanCount()})
	}

	result.Count = len(result.Patrons)

	return result
}
