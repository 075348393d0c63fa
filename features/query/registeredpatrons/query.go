package registeredpatrons

const (
	queryType = "RegisteredPatrons"
)

// Query represents the intent to list all registered patrons.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}
