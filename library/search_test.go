package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/library"
)

func Test_Library_Search(t *testing.T) {
	lib := givenLibrary(t)
	require.NoError(t, lib.RegisterBook("Dune", "Frank Herbert", 1965, "ISBN1", 2))
	require.NoError(t, lib.RegisterBook("Dune Messiah", "Frank Herbert", 1969, "ISBN2", 1))
	require.NoError(t, lib.RegisterBook("Foundation", "Isaac Asimov", 1951, "ISBN3", 1))

	testCases := []struct {
		name  string
		field library.SearchField
		query string
		want  []string
	}{
		{"title substring ignores case", library.SearchByTitle, "dUNE", []string{"ISBN1", "ISBN2"}},
		{"title without match", library.SearchByTitle, "Hyperion", []string{}},
		{"author substring", library.SearchByAuthor, "asim", []string{"ISBN3"}},
		{"empty query matches all", library.SearchByAuthor, "", []string{"ISBN1", "ISBN2", "ISBN3"}},
		{"year exact", library.SearchByYear, "1965", []string{"ISBN1"}},
		{"year with whitespace", library.SearchByYear, " 1969 ", []string{"ISBN2"}},
		{"year is not a substring match", library.SearchByYear, "196", []string{}},
		{"year not numeric", library.SearchByYear, "abc", []string{}},
		{"unknown field", library.SearchField("isbn"), "ISBN1", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			books := lib.Search(tc.field, tc.query)

			// assert
			assert.Equal(t, tc.want, keysOf(books))
		})
	}
}

func Test_ParseSearchField(t *testing.T) {
	field, ok := library.ParseSearchField(" Title ")
	assert.True(t, ok)
	assert.Equal(t, library.SearchByTitle, field)

	_, ok = library.ParseSearchField("publisher")
	assert.False(t, ok)
}

func keysOf(books []core.Book) []string {
	keys := make([]string, 0, len(books))
	for _, b := range books {
		keys = append(keys, b.Key)
	}

	return keys
}
