package booksonloan

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// LendingInfo pairs a book with the number of its copies that are out.
type LendingInfo struct {
	Book       core.Book
	CopiesLent int
}

// BooksOnLoan represents the query result containing all books with copies out.
type BooksOnLoan struct {
	Books         []LendingInfo
	Count         int
	CopiesLentOut int
}

// ResultCount returns the number of books in the report.
func (r BooksOnLoan) ResultCount() int {
	return r.Count
}
