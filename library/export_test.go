package library

import (
	"time"
)

// RecordLoanWithoutLending records a loan on the patron only, leaving the book untouched.
// Tests use it to drive the library into the state a consistency fault is made of.
func RecordLoanWithoutLending(l *Library, patronKey, bookKey string, lentAt time.Time) error {
	return l.patrons[patronKey].RecordLoan(bookKey, lentAt)
}
