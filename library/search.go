package library

import (
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-lending-go/core"
)

// SearchField selects which book attribute Search matches against.
type SearchField string

// The searchable fields.
const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
	SearchByYear   SearchField = "year"
)

// ParseSearchField maps a field name to a SearchField.
// Unknown names return false.
func ParseSearchField(name string) (SearchField, bool) {
	switch field := SearchField(strings.ToLower(strings.TrimSpace(name))); field {
	case SearchByTitle, SearchByAuthor, SearchByYear:
		return field, true
	default:
		return "", false
	}
}

// Search returns snapshots of the matching books in catalog order.
//
// Title and author match case-insensitively on substrings. Year matches exactly;
// a query that is not an integer matches nothing, and so does an unknown field.
func (l *Library) Search(field SearchField, query string) []core.Book {
	match, ok := l.matcher(field, query)
	if !ok {
		return []core.Book{}
	}

	return l.booksWhere(match)
}

func (l *Library) matcher(field SearchField, query string) (func(core.Book) bool, bool) {
	switch field {
	case SearchByTitle:
		needle := strings.ToLower(query)
		return func(b core.Book) bool { return strings.Contains(strings.ToLower(b.Title), needle) }, true

	case SearchByAuthor:
		needle := strings.ToLower(query)
		return func(b core.Book) bool { return strings.Contains(strings.ToLower(b.Author), needle) }, true

	case SearchByYear:
		year, err := strconv.Atoi(strings.TrimSpace(query))
		if err != nil {
			return nil, false
		}

		return func(b core.Book) bool { return b.Year == year }, true

	default:
		return nil, false
	}
}

func (l *Library) booksWhere(match func(core.Book) bool) []core.Book {
	books := make([]core.Book, 0)

	for _, key := range l.bookOrder {
		if book := *l.books[key]; match(book) {
			books = append(books, book)
		}
	}

	return books
}
