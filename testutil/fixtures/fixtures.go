package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/library"
)

// Keys and values of the canonical Dune scenario.
const (
	DuneKey    = "ISBN1"
	DuneTitle  = "Dune"
	DuneAuthor = "Frank Herbert"
	DuneYear   = 1965
	DuneCopies = 2

	AnaKey     = "P1"
	AnaName    = "Ana"
	AnaContact = "ana@example.org"

	BrunoKey  = "P2"
	BrunoName = "Bruno"
)

// FakeNow is the instant every fixture clock reports.
var FakeNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FakeNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FakeNow }
}

// EmptyLibrary creates a Library with a fixed clock.
func EmptyLibrary(t *testing.T, opts ...library.Option) *library.Library {
	t.Helper()

	lib, err := library.New(append([]library.Option{library.WithClock(FixedClock())}, opts...)...)
	require.NoError(t, err)

	return lib
}

// DuneLibrary creates a Library holding Dune with two copies and the patrons Ana and Bruno.
func DuneLibrary(t *testing.T, opts ...library.Option) *library.Library {
	t.Helper()

	lib := EmptyLibrary(t, opts...)
	require.NoError(t, lib.RegisterBook(DuneTitle, DuneAuthor, DuneYear, DuneKey, DuneCopies))
	require.NoError(t, lib.RegisterPatron(AnaName, AnaKey, AnaContact))
	require.NoError(t, lib.RegisterPatron(BrunoName, BrunoKey, ""))

	return lib
}
