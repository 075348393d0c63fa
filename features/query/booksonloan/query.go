package booksonloan

const (
	queryType = "BooksOnLoan"
)

// Query represents the intent to list the books that are currently lent out.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}
