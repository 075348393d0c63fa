package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

func Test_ResultFor_ClassifiesErrors(t *testing.T) {
	rejection := core.NewError(core.KindNoSuchLoan, "ISBN1", "P1")
	fault := core.AsConsistencyFault(core.NewError(core.KindOverReturn, "ISBN1", "P1"))

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, shell.OutcomeSuccess},
		{"rejection", rejection, shell.OutcomeRejected},
		{"wrapped rejection", fmt.Errorf("lend: %w", rejection), shell.OutcomeRejected},
		{"consistency fault", fault, shell.OutcomeConsistencyFault},
		{"canceled", context.Canceled, shell.OutcomeError},
		{"foreign", errors.New("boom"), shell.OutcomeError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shell.ResultFor(nil, tc.err).Outcome)
		})
	}
}

func Test_IsBusinessRejection_ExcludesConsistencyFaults(t *testing.T) {
	fault := core.AsConsistencyFault(core.NewError(core.KindOverReturn, "ISBN1", "P1"))

	assert.False(t, shell.IsBusinessRejection(fault))
	assert.True(t, shell.IsBusinessRejection(core.NewError(core.KindBookNotFound, "ISBN1", "")))
	assert.False(t, shell.IsBusinessRejection(nil))
}
