package library

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// ErrInconsistentState is returned by CheckConsistency.
var ErrInconsistentState = errors.New("library state is inconsistent")

// CheckConsistency verifies the availability bound of every book and that the loans
// held by all patrons add up to the copies that are off the shelf.
// All violations are reported together.
func (l *Library) CheckConsistency() error {
	loansPerBook := make(map[core.BookKeyString]int, len(l.books))
	var violations []error

	for _, patronKey := range l.patronOrder {
		for _, loan := range l.patrons[patronKey].ActiveLoans() {
			if _, ok := l.books[loan.BookKey]; !ok {
				violations = append(violations, fmt.Errorf(
					"patron %q holds a loan of unknown book %q", patronKey, loan.BookKey))
				continue
			}

			loansPerBook[loan.BookKey]++
		}
	}

	for _, key := range l.bookOrder {
		book := l.books[key]

		if book.CopiesAvailable() < 0 || book.CopiesAvailable() > book.TotalCopies() {
			violations = append(violations, fmt.Errorf(
				"book %q has %d of %d copies available", key, book.CopiesAvailable(), book.TotalCopies()))
		}

		if loansPerBook[key] != book.CopiesLent() {
			violations = append(violations, fmt.Errorf(
				"book %q has %d copies lent but %d active loans", key, book.CopiesLent(), loansPerBook[key]))
		}
	}

	if len(violations) > 0 {
		return errors.Join(append([]error{ErrInconsistentState}, violations...)...)
	}

	return nil
}
