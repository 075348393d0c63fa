package library_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/library"
)

func Test_Library_Reports(t *testing.T) {
	// arrange
	now := fakeNow
	lib, err := library.New(library.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	require.NoError(t, lib.RegisterBook("Dune", "Frank Herbert", 1965, "ISBN1", 2))
	require.NoError(t, lib.RegisterBook("Emma", "Jane Austen", 1815, "ISBN2", 1))
	require.NoError(t, lib.RegisterBook("Solaris", "Stanislaw Lem", 1961, "ISBN3", 0))
	require.NoError(t, lib.RegisterPatron("Bruno", "P2", ""))
	require.NoError(t, lib.RegisterPatron("Ana", "P1", ""))

	require.NoError(t, lib.Lend("P1", "ISBN2"))
	now = now.Add(time.Hour)
	require.NoError(t, lib.Lend("P1", "ISBN1"))
	now = now.Add(time.Hour)
	require.NoError(t, lib.Lend("P2", "ISBN1"))

	t.Run("available", func(t *testing.T) {
		assert.Equal(t, []string{}, keysOf(lib.ReportAvailable()))
	})

	t.Run("on loan with lent counts", func(t *testing.T) {
		onLoan := lib.ReportOnLoan()

		require.Len(t, onLoan, 2)
		assert.Equal(t, "ISBN1", onLoan[0].Book.Key)
		assert.Equal(t, 2, onLoan[0].CopiesLent)
		assert.Equal(t, "ISBN2", onLoan[1].Book.Key)
		assert.Equal(t, 1, onLoan[1].CopiesLent)
	})

	t.Run("patrons in registration order", func(t *testing.T) {
		patrons := lib.ReportPatrons()

		require.Len(t, patrons, 2)
		assert.Equal(t, "P2", patrons[0].Key)
		assert.Equal(t, "P1", patrons[1].Key)
	})

	t.Run("active loans", func(t *testing.T) {
		loans := lib.ReportActiveLoans()

		require.Len(t, loans, 3)
		assert.Equal(t, [3]string{"P2", "ISBN1", fakeNow.Add(2 * time.Hour).String()}, loanTuple(loans[0]))
		assert.Equal(t, [3]string{"P1", "ISBN2", fakeNow.String()}, loanTuple(loans[1]))
		assert.Equal(t, [3]string{"P1", "ISBN1", fakeNow.Add(time.Hour).String()}, loanTuple(loans[2]))
	})

	require.NoError(t, lib.ReturnBook("P2", "ISBN1"))

	t.Run("available after return", func(t *testing.T) {
		assert.Equal(t, []string{"ISBN1"}, keysOf(lib.ReportAvailable()))
	})
}

func Test_Library_ReportActiveLoans_SkipsDanglingBookKeys(t *testing.T) {
	// arrange
	lib := givenDuneLibrary(t)
	require.NoError(t, library.RecordLoanWithoutLending(lib, "P1", "GHOST", fakeNow))
	require.NoError(t, lib.Lend("P1", "ISBN1"))

	// act
	loans := lib.ReportActiveLoans()

	// assert
	require.Len(t, loans, 1)
	assert.Equal(t, "ISBN1", loans[0].Book.Key)
}

func Test_Library_Reports_EmptyLibrary(t *testing.T) {
	// arrange
	lib := givenLibrary(t)

	// act & assert
	assert.Empty(t, lib.ReportAvailable())
	assert.Empty(t, lib.ReportOnLoan())
	assert.Empty(t, lib.ReportPatrons())
	assert.Empty(t, lib.ReportActiveLoans())
	assert.NoError(t, lib.CheckConsistency())
}

func Test_Seed_RegistersSampleDataOnce(t *testing.T) {
	// arrange
	lib := givenLibrary(t)
	books, patrons := library.SeedData()

	// act
	errFirst := library.Seed(lib)
	errSecond := library.Seed(lib)

	// assert
	assert.NoError(t, errFirst)
	assert.ErrorIs(t, errSecond, core.ErrDuplicateBook)
	assert.ErrorIs(t, errSecond, core.ErrDuplicatePatron)
	assert.Equal(t, len(books), lib.BookCount())
	assert.Equal(t, len(patrons), lib.PatronCount())
}

func loanTuple(loan library.ActiveLoan) [3]string {
	return [3]string{loan.Patron.Key, loan.Book.Key, loan.LentAt.String()}
}
