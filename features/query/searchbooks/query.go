package searchbooks

import (
	"github.com/AntonStoeckl/library-lending-go/library"
)

const (
	queryType = "SearchBooks"
)

// Query represents the intent to search the catalog.
type Query struct {
	Field library.SearchField
	Text  string
}

// BuildQuery creates a new Query.
func BuildQuery(field library.SearchField, text string) Query {
	return Query{
		Field: field,
		Text:  text,
	}
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}
