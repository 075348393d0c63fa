package library

import (
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// Library owns the catalog and the patron registry.
type Library struct {
	books       map[core.BookKeyString]*core.Book
	bookOrder   []core.BookKeyString
	patrons     map[core.PatronKeyString]*core.Patron
	patronOrder []core.PatronKeyString

	now    func() time.Time
	logger Logger
}

// New creates an empty Library.
func New(opts ...Option) (*Library, error) {
	l := &Library{
		books:   make(map[core.BookKeyString]*core.Book),
		patrons: make(map[core.PatronKeyString]*core.Patron),
		now:     time.Now,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// RegisterBook adds a new title with all of its copies on the shelf.
func (l *Library) RegisterBook(title, author string, year int, key core.BookKeyString, totalCopies int) error {
	if _, exists := l.books[key]; exists {
		return core.NewError(core.KindDuplicateBook, key, "")
	}

	book, err := core.NewBook(title, author, year, key, totalCopies)
	if err != nil {
		return err
	}

	l.books[key] = &book
	l.bookOrder = append(l.bookOrder, key)

	return nil
}

// RegisterPatron adds a new patron without loans.
func (l *Library) RegisterPatron(name string, key core.PatronKeyString, contact string) error {
	if _, exists := l.patrons[key]; exists {
		return core.NewError(core.KindDuplicatePatron, "", key)
	}

	patron := core.NewPatron(name, key, contact)
	l.patrons[key] = &patron
	l.patronOrder = append(l.patronOrder, key)

	return nil
}

// Lend lends one copy of the book to the patron.
//
// The patron is looked up before the book. When the loan cannot be recorded,
// the copy goes back on the shelf before the error is returned, so either both
// sides change or neither does.
func (l *Library) Lend(patronKey core.PatronKeyString, bookKey core.BookKeyString) error {
	patron, book, err := l.lookup(patronKey, bookKey)
	if err != nil {
		return err
	}

	if err = book.Lend(); err != nil {
		return withPatron(err, patronKey)
	}

	if err = patron.RecordLoan(bookKey, l.now()); err != nil {
		if compErr := book.ReturnCopy(); compErr != nil {
			// cannot happen while the copy was taken a moment ago
			l.logError(logMsgCompensationFailed, patronKey, bookKey, compErr)
		}

		l.logDebug(logMsgCompensatedLend, patronKey, bookKey, err)

		return err
	}

	return nil
}

// ReturnBook takes a copy back from the patron.
//
// The loan is removed first. If the copy then cannot go back on the shelf the loan is NOT
// re-added; the returned error matches both core.ErrOverReturn and core.ErrConsistencyFault.
func (l *Library) ReturnBook(patronKey core.PatronKeyString, bookKey core.BookKeyString) error {
	patron, book, err := l.lookup(patronKey, bookKey)
	if err != nil {
		return err
	}

	if err = patron.RecordReturn(bookKey); err != nil {
		return err
	}

	if err = book.ReturnCopy(); err != nil {
		fault := asFault(err, patronKey)
		l.logFault(patronKey, book, fault)

		return fault
	}

	return nil
}

// Book returns a snapshot of the book with the given key.
func (l *Library) Book(key core.BookKeyString) (core.Book, error) {
	book, ok := l.books[key]
	if !ok {
		return core.Book{}, core.NewError(core.KindBookNotFound, key, "")
	}

	return *book, nil
}

// Patron returns a snapshot of the patron with the given key.
func (l *Library) Patron(key core.PatronKeyString) (core.Patron, error) {
	patron, ok := l.patrons[key]
	if !ok {
		return core.Patron{}, core.NewError(core.KindPatronNotFound, "", key)
	}

	return patron.Clone(), nil
}

func (l *Library) BookCount() int {
	return len(l.bookOrder)
}

func (l *Library) PatronCount() int {
	return len(l.patronOrder)
}

func (l *Library) lookup(
	patronKey core.PatronKeyString,
	bookKey core.BookKeyString,
) (*core.Patron, *core.Book, error) {

	patron, ok := l.patrons[patronKey]
	if !ok {
		return nil, nil, core.NewError(core.KindPatronNotFound, bookKey, patronKey)
	}

	book, ok := l.books[bookKey]
	if !ok {
		return nil, nil, core.NewError(core.KindBookNotFound, bookKey, patronKey)
	}

	return patron, book, nil
}

func withPatron(err error, patronKey core.PatronKeyString) error {
	if e, ok := err.(*core.Error); ok && e.PatronKey == "" {
		c := *e
		c.PatronKey = patronKey

		return &c
	}

	return err
}

func asFault(err error, patronKey core.PatronKeyString) error {
	if e, ok := withPatron(err, patronKey).(*core.Error); ok {
		return core.AsConsistencyFault(e)
	}

	return err
}

func (l *Library) logFault(patronKey core.PatronKeyString, book *core.Book, err error) {
	if l.logger == nil {
		return
	}

	l.logger.Error(
		logMsgConsistencyFault,
		logAttrPatronKey, patronKey,
		logAttrBookKey, book.Key,
		logAttrCopiesAvailable, book.CopiesAvailable(),
		logAttrTotalCopies, book.TotalCopies(),
		logAttrError, err.Error(),
	)
}

func (l *Library) logError(msg string, patronKey core.PatronKeyString, bookKey core.BookKeyString, err error) {
	if l.logger != nil {
		l.logger.Error(msg, logAttrPatronKey, patronKey, logAttrBookKey, bookKey, logAttrError, err.Error())
	}
}

func (l *Library) logDebug(msg string, patronKey core.PatronKeyString, bookKey core.BookKeyString, err error) {
	if l.logger != nil {
		l.logger.Debug(msg, logAttrPatronKey, patronKey, logAttrBookKey, bookKey, logAttrError, err.Error())
	}
}
