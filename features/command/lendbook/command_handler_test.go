package lendbook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/features/command/lendbook"
	"github.com/AntonStoeckl/library-lending-go/shell"
	"github.com/AntonStoeckl/library-lending-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-lending-go/testutil/testdoubles"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	publisher := testdoubles.NewEventPublisherSpy(nil)
	handler := lendbook.NewCommandHandler(lib, lendbook.WithEventPublisher(publisher))

	// act
	result, err := handler.Handle(
		context.Background(),
		lendbook.BuildCommand(fixtures.AnaKey, fixtures.DuneKey, fixtures.FakeNow),
	)

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.OutcomeSuccess, result.Outcome)
	assert.NoError(t, result.PublishErr)

	book, _ := lib.Book(fixtures.DuneKey)
	assert.Equal(t, 1, book.CopiesAvailable())

	assert.Equal(t, core.BuildBookLentToPatron(fixtures.DuneKey, fixtures.AnaKey, fixtures.FakeNow), publisher.LastEvent())
}

func Test_CommandHandler_Handle_Error_NoCopiesAvailable(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	require.NoError(t, lib.RegisterPatron("Carla", "P3", ""))
	require.NoError(t, lib.Lend(fixtures.AnaKey, fixtures.DuneKey))
	require.NoError(t, lib.Lend(fixtures.BrunoKey, fixtures.DuneKey))
	publisher := testdoubles.NewEventPublisherSpy(nil)
	handler := lendbook.NewCommandHandler(lib, lendbook.WithEventPublisher(publisher))

	// act
	result, err := handler.Handle(context.Background(), lendbook.BuildCommand("P3", fixtures.DuneKey, fixtures.FakeNow))

	// assert
	assert.ErrorIs(t, err, core.ErrNoCopiesAvailable)
	assert.Equal(t, shell.OutcomeRejected, result.Outcome)

	failed, ok := publisher.LastEvent().(core.OperationFailed)
	require.True(t, ok)
	assert.Equal(t, core.LendingBookFailedEventType, failed.IsEventType())
	assert.Equal(t, "NoCopiesAvailable", failed.ErrorKind)
	assert.Equal(t, "P3", failed.PatronKey)
	assert.True(t, failed.IsErrorEvent())
}

func Test_CommandHandler_Handle_Error_DuplicateLoanLeavesStateUnchanged(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	handler := lendbook.NewCommandHandler(lib)
	command := lendbook.BuildCommand(fixtures.AnaKey, fixtures.DuneKey, fixtures.FakeNow)
	_, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateLoan)
	assert.Equal(t, shell.OutcomeRejected, result.Outcome)

	book, _ := lib.Book(fixtures.DuneKey)
	assert.Equal(t, 1, book.CopiesAvailable())
}

func Test_CommandHandler_Handle_PublishFailureDoesNotFailLend(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	publishErr := errors.New("writer closed")
	handler := lendbook.NewCommandHandler(lib, lendbook.WithEventPublisher(testdoubles.NewEventPublisherSpy(publishErr)))

	// act
	result, err := handler.Handle(
		context.Background(),
		lendbook.BuildCommand(fixtures.AnaKey, fixtures.DuneKey, fixtures.FakeNow),
	)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, shell.OutcomeSuccess, result.Outcome)
	assert.ErrorIs(t, result.PublishErr, publishErr)
}

func Test_CommandHandler_Handle_CanceledContext(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	handler := lendbook.NewCommandHandler(lib)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	result, err := handler.Handle(ctx, lendbook.BuildCommand(fixtures.AnaKey, fixtures.DuneKey, fixtures.FakeNow))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, shell.OutcomeError, result.Outcome)

	book, _ := lib.Book(fixtures.DuneKey)
	assert.Equal(t, 2, book.CopiesAvailable(), "canceled command must not touch the library")
}
