package activeloans

import (
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// LoanInfo represents one book currently lent to a patron.
type LoanInfo struct {
	PatronKey  core.PatronKeyString
	PatronName string
	BookKey    core.BookKeyString
	BookTitle  string
	LentAt     time.Time
}

// ActiveLoans represents the query result containing all active loans.
type ActiveLoans struct {
	Loans []LoanInfo
	Count int
}

// ResultCount returns the number of loans in the report.
func (r ActiveLoans) ResultCount() int {
	return r.Count
}
