package library

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// BookOnLoan pairs a book with the number of its copies that are out.
type BookOnLoan struct {
	Book       core.Book
	CopiesLent int
}

// ActiveLoan is one loan as seen from the whole library.
type ActiveLoan struct {
	Patron core.Patron
	Book   core.Book
	LentAt core.OccurredAtTS
}

// ReportAvailable returns the books with at least one copy on the shelf.
func (l *Library) ReportAvailable() []core.Book {
	return l.booksWhere(core.Book.IsAvailable)
}

// ReportOnLoan returns the books with at least one copy out, with the lent count.
func (l *Library) ReportOnLoan() []BookOnLoan {
	onLoan := make([]BookOnLoan, 0)

	for _, book := range l.booksWhere(core.Book.IsOnLoan) {
		onLoan = append(onLoan, BookOnLoan{Book: book, CopiesLent: book.CopiesLent()})
	}

	return onLoan
}

// ReportPatrons returns all patrons in registration order.
func (l *Library) ReportPatrons() []core.Patron {
	patrons := make([]core.Patron, 0, len(l.patronOrder))

	for _, key := range l.patronOrder {
		patrons = append(patrons, l.patrons[key].Clone())
	}

	return patrons
}

// ReportActiveLoans lists every loan, patrons in registration order and loans in the order they were made.
// Loans whose book is not in the catalog are skipped.
func (l *Library) ReportActiveLoans() []ActiveLoan {
	loans := make([]ActiveLoan, 0)

	for _, patronKey := range l.patronOrder {
		patron := l.patrons[patronKey]

		for _, loan := range patron.ActiveLoans() {
			book, ok := l.books[loan.BookKey]
			if !ok {
				continue
			}

			loans = append(loans, ActiveLoan{
				Patron: patron.Clone(),
				Book:   *book,
				LentAt: loan.LentAt,
			})
		}
	}

	return loans
}
