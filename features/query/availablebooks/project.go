package availablebooks

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// ProjectAvailableBooks builds the report and sums up the copies on the shelf.
func ProjectAvailableBooks(books []core.Book) AvailableBooks {
	result := AvailableBooks{Books: make([]core.Book, 0, len(books))}

	for _, book := range books {
		result.Books = append(result.Books, book)
		result.TotalCopies += book.CopiesAvailable()
	}

	result.Count = len(result.Books)

	return result
}
