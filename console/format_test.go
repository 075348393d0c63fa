package console_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/console"
	"github.com/AntonStoeckl/library-lending-go/core"
)

func Test_FormatBook(t *testing.T) {
	book, err := core.NewBook("Dune", "Herbert", 1965, "ISBN1", 2)
	require.NoError(t, err)
	require.NoError(t, book.Lend())

	assert.Equal(t, "Dune (1965) - Herbert - Copies: 1", console.FormatBook(book))
	assert.Equal(t, "Dune (1965) - Herbert - Copies: 1 - Lent: 1", console.FormatBookOnLoan(book, book.CopiesLent()))
}

func Test_FormatPatron(t *testing.T) {
	assert.Equal(t, "Ana (ID: P1)", console.FormatPatron(core.NewPatron("Ana", "P1", "a@x.com")))
}

func Test_FormatActiveLoan_UsesCalendarDate(t *testing.T) {
	lentAt := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Ana - Dune (ISBN1) - since 2024-03-01", console.FormatActiveLoan("Ana", "Dune", "ISBN1", lentAt))
}

func Test_ErrorMessage_CoversEveryKind(t *testing.T) {
	seen := make(map[string]core.Kind)

	for _, kind := range core.AllKinds() {
		message := console.ErrorMessage(core.NewError(kind, "ISBN1", "P1"))

		assert.NotContains(t, message, "Unexpected error", "kind %s", kind)
		if other, dup := seen[message]; dup {
			t.Errorf("kinds %s and %s share the message %q", other, kind, message)
		}
		seen[message] = kind
	}
}

func Test_ErrorMessage_ConsistencyFaultIsDistinct(t *testing.T) {
	overReturn := core.NewError(core.KindOverReturn, "ISBN1", "P1")

	assert.NotEqual(t, console.ErrorMessage(overReturn), console.ErrorMessage(core.AsConsistencyFault(overReturn)))
	assert.Contains(t, console.ErrorMessage(core.AsConsistencyFault(overReturn)), "out of sync")
}

func Test_ErrorMessage_ForeignError(t *testing.T) {
	assert.Equal(t, "Unexpected error: boom", console.ErrorMessage(errors.New("boom")))
}
