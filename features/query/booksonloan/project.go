package booksonloan

import (
	"github.com/AntonStoeckl/library-lending-go/library"
)

// ProjectBooksOnLoan builds the report from the library's on-loan listing.
func ProjectBooksOnLoan(onLoan []library.BookOnLoan) BooksOnLoan {
	result := BooksOnLoan{Books: make([]LendingInfo, 0, len(onLoan))}

	for _, entry := range onLoan {
		result.Books = append(result.Books, LendingInfo{
			Book:       entry.Book,
			CopiesLent: entry.CopiesLent,
		})
		result.CopiesLentOut += entry.CopiesLent
	}

	result.Count = len(result.Books)

	return result
}
