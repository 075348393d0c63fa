package availablebooks

import (
	"github.com/AntonStoeckl/library-lending-go/core"
)

// AvailableBooks represents the query result containing all books with copies on the shelf.
type AvailableBooks struct {
	Books       []core.Book
	Count       int
	TotalCopies int
}

// ResultCount returns the number of books in the report.
func (r AvailableBooks) ResultCount() int {
	return r.Count
}
