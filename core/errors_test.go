package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-lending-go/core"
)

func Test_Error_MatchesSentinelOfItsKind(t *testing.T) {
	sentinels := map[core.Kind]error{
		core.KindDuplicateBook:     core.ErrDuplicateBook,
		core.KindDuplicatePatron:   core.ErrDuplicatePatron,
		core.KindBookNotFound:      core.ErrBookNotFound,
		core.KindPatronNotFound:    core.ErrPatronNotFound,
		core.KindNoCopiesAvailable: core.ErrNoCopiesAvailable,
		core.KindOverReturn:        core.ErrOverReturn,
		core.KindDuplicateLoan:     core.ErrDuplicateLoan,
		core.KindNoSuchLoan:        core.ErrNoSuchLoan,
		core.KindInvalidCopyCount:  core.ErrInvalidCopyCount,
	}

	assert.Len(t, sentinels, len(core.AllKinds()))

	for kind, sentinel := range sentinels {
		t.Run(kind.String(), func(t *testing.T) {
			// act
			err := fmt.Errorf("wrapped: %w", core.NewError(kind, "ISBN1", "P1"))

			// assert
			assert.ErrorIs(t, err, sentinel)
			assert.False(t, core.IsConsistencyFault(err))

			gotKind, ok := core.KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, kind, gotKind)
		})
	}
}

func Test_AsConsistencyFault_KeepsKindAndMarksFault(t *testing.T) {
	// arrange
	base := core.NewError(core.KindOverReturn, "ISBN1", "P1")

	// act
	fault := core.AsConsistencyFault(base)

	// assert
	assert.ErrorIs(t, fault, core.ErrOverReturn)
	assert.ErrorIs(t, fault, core.ErrConsistencyFault)
	assert.Equal(t, core.SeverityCritical, fault.Severity())
	assert.Contains(t, fault.Error(), "consistency fault")
	assert.False(t, base.IsConsistencyFault(), "original error must stay untouched")
	assert.Equal(t, core.SeverityWarning, base.Severity())
}

func Test_KindOf_ReturnsFalseForForeignErrors(t *testing.T) {
	// act
	_, ok := core.KindOf(errors.New("boom"))

	// assert
	assert.False(t, ok)
}

func Test_Error_MessageNamesKeys(t *testing.T) {
	// act
	msg := core.NewError(core.KindDuplicateLoan, "ISBN1", "P1").Error()

	// assert
	assert.Equal(t, `patron already has this book on loan (patron "P1") (book "ISBN1")`, msg)
}
