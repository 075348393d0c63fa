package availablebooks

const (
	queryType = "AvailableBooks"
)

// Query represents the intent to list the books that can be lent right now.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}
