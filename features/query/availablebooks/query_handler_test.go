package availablebooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/features/query/availablebooks"
	"github.com/AntonStoeckl/library-lending-go/testutil/fixtures"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	require.NoError(t, lib.RegisterBook("Emma", "Jane Austen", 1815, "ISBN2", 1))
	require.NoError(t, lib.Lend(fixtures.AnaKey, "ISBN2"))
	require.NoError(t, lib.Lend(fixtures.AnaKey, fixtures.DuneKey))
	handler := availablebooks.NewQueryHandler(lib)

	// act
	result, err := handler.Handle(context.Background(), availablebooks.BuildQuery())

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, result.ResultCount())
	assert.Equal(t, fixtures.DuneKey, result.Books[0].Key)
	assert.Equal(t, 1, result.TotalCopies)
}
