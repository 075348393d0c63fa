package console

import (
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

const loanDateLayout = "2006-01-02"

// FormatBook renders a book as "{title} ({year}) - {author} - Copies: {available}".
func FormatBook(book core.Book) string {
	return fmt.Sprintf("%s (%d) - %s - Copies: %d", book.Title, book.Year, book.Author, book.CopiesAvailable())
}

// FormatPatron renders a patron as "{name} (ID: {key})".
func FormatPatron(patron core.Patron) string {
	return fmt.Sprintf("%s (ID: %s)", patron.Name, patron.Key)
}

// FormatBookOnLoan renders a book followed by the number of copies that are out.
func FormatBookOnLoan(book core.Book, copiesLent int) string {
	return fmt.Sprintf("%s - Lent: %d", FormatBook(book), copiesLent)
}

// FormatActiveLoan renders "{patron} - {book title} ({book key}) - since {YYYY-MM-DD}".
func FormatActiveLoan(patronName string, bookTitle string, bookKey core.BookKeyString, lentAt time.Time) string {
	return fmt.Sprintf("%s - %s (%s) - since %s", patronName, bookTitle, bookKey, lentAt.Format(loanDateLayout))
}

// ErrorMessage turns a handler error into the sentence shown to the librarian.
func ErrorMessage(err error) string {
	var domainErr *core.Error
	if !errors.As(err, &domainErr) {
		return fmt.Sprintf("Unexpected error: %v", err)
	}

	if domainErr.IsConsistencyFault() {
		return fmt.Sprintf(
			"Internal error: book %s and patron %s are out of sync. The return was not completed; please report this.",
			domainErr.BookKey, domainErr.PatronKey,
		)
	}

	switch domainErr.Kind {
	case core.KindDuplicateBook:
		return fmt.Sprintf("A book with catalog key %s is already registered.", domainErr.BookKey)
	case core.KindDuplicatePatron:
		return fmt.Sprintf("A patron with ID %s is already registered.", domainErr.PatronKey)
	case core.KindBookNotFound:
		return fmt.Sprintf("No book with catalog key %s.", domainErr.BookKey)
	case core.KindPatronNotFound:
		return fmt.Sprintf("No patron with ID %s.", domainErr.PatronKey)
	case core.KindNoCopiesAvailable:
		return fmt.Sprintf("No copies of %s are available.", domainErr.BookKey)
	case core.KindOverReturn:
		return fmt.Sprintf("All copies of %s are already in the library.", domainErr.BookKey)
	case core.KindDuplicateLoan:
		return fmt.Sprintf("Patron %s already has %s on loan.", domainErr.PatronKey, domainErr.BookKey)
	case core.KindNoSuchLoan:
		return fmt.Sprintf("Patron %s does not have %s on loan.", domainErr.PatronKey, domainErr.BookKey)
	case core.KindInvalidCopyCount:
		return "Total copies must not be negative."
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

// invalidNumberMessage is shown when the year or the copy count is not a whole number.
const invalidNumberMessage = "Error: year and total copies must be whole numbers."
