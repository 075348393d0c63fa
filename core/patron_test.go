package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/core"
)

func Test_Patron_RecordLoan_RejectsSecondLoanOfSameBook(t *testing.T) {
	// arrange
	patron := core.NewPatron("Ana", "P1", "ana@example.org")
	lentAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, patron.RecordLoan("ISBN1", lentAt))

	// act
	err := patron.RecordLoan("ISBN1", lentAt.Add(time.Hour))

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateLoan)
	assert.Equal(t, 1, patron.LoanCount())

	recorded, ok := patron.LoanedAt("ISBN1")
	assert.True(t, ok)
	assert.Equal(t, lentAt, recorded, "original loan timestamp must be kept")
}

func Test_Patron_RecordReturn_FailsWithoutLoan(t *testing.T) {
	// arrange
	patron := core.NewPatron("Ana", "P1", "")

	// act
	err := patron.RecordReturn("ISBN1")

	// assert
	assert.ErrorIs(t, err, core.ErrNoSuchLoan)
}

func Test_Patron_ActiveLoans_KeepsRecordingOrder(t *testing.T) {
	// arrange
	patron := core.NewPatron("Ana", "P1", "")
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, patron.RecordLoan("B", start))
	require.NoError(t, patron.RecordLoan("A", start.Add(time.Minute)))
	require.NoError(t, patron.RecordLoan("C", start.Add(2*time.Minute)))

	// act
	require.NoError(t, patron.RecordReturn("A"))
	loans := patron.ActiveLoans()

	// assert
	require.Len(t, loans, 2)
	assert.Equal(t, "B", loans[0].BookKey)
	assert.Equal(t, "C", loans[1].BookKey)
	assert.False(t, patron.HasLoan("A"))
}

func Test_Patron_RecordLoan_NormalizesTimestamp(t *testing.T) {
	// arrange
	patron := core.NewPatron("Ana", "P1", "")
	berlin := time.FixedZone("CET", 3600)
	lentAt := time.Date(2024, 3, 1, 11, 0, 0, 123456789, berlin)

	// act
	require.NoError(t, patron.RecordLoan("ISBN1", lentAt))

	// assert
	recorded, _ := patron.LoanedAt("ISBN1")
	assert.Equal(t, time.UTC, recorded.Location())
	assert.Equal(t, 123456000, recorded.Nanosecond())
}

func Test_Patron_Clone_DoesNotShareLoans(t *testing.T) {
	// arrange
	patron := core.NewPatron("Ana", "P1", "")
	require.NoError(t, patron.RecordLoan("ISBN1", time.Now()))

	// act
	clone := patron.Clone()
	require.NoError(t, clone.RecordReturn("ISBN1"))

	// assert
	assert.True(t, patron.HasLoan("ISBN1"))
	assert.False(t, clone.HasLoan("ISBN1"))
}

func Test_Patron_ZeroValue_CanRecordLoans(t *testing.T) {
	// arrange
	var patron core.Patron

	// act
	err := patron.RecordLoan("ISBN1", time.Now())

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, patron.LoanCount())
}
