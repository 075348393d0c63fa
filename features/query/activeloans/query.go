package activeloans

const (
	queryType = "ActiveLoans"
)

// Query represents the intent to list all active loans.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}
