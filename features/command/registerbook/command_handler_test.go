package registerbook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/features/command/registerbook"
	"github.com/AntonStoeckl/library-lending-go/shell"
	"github.com/AntonStoeckl/library-lending-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-lending-go/testutil/testdoubles"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	lib := fixtures.EmptyLibrary(t)
	publisher := testdoubles.NewEventPublisherSpy(nil)
	handler := registerbook.NewCommandHandler(lib, registerbook.WithEventPublisher(publisher))

	// act
	result, err := handler.Handle(context.Background(), registerbook.BuildCommand(
		fixtures.DuneKey, fixtures.DuneTitle, fixtures.DuneAuthor, fixtures.DuneYear, fixtures.DuneCopies, fixtures.FakeNow,
	))

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.OutcomeSuccess, result.Outcome)

	book, err := lib.Book(fixtures.DuneKey)
	require.NoError(t, err)
	assert.Equal(t, fixtures.DuneCopies, book.CopiesAvailable())

	registered, ok := publisher.LastEvent().(core.BookRegistered)
	require.True(t, ok)
	assert.Equal(t, fixtures.DuneTitle, registered.Title)
	assert.Equal(t, fixtures.DuneCopies, registered.TotalCopies)
}

func Test_CommandHandler_Handle_Error_DuplicateBook(t *testing.T) {
	// arrange
	lib := fixtures.DuneLibrary(t)
	publisher := testdoubles.NewEventPublisherSpy(nil)
	handler := registerbook.NewCommandHandler(lib, registerbook.WithEventPublisher(publisher))

	// act
	result, err := handler.Handle(context.Background(), registerbook.BuildCommand(
		fixtures.DuneKey, "Other", "Someone", 2001, 1, fixtures.FakeNow,
	))

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateBook)
	assert.Equal(t, shell.OutcomeRejected, result.Outcome)
	assert.Equal(t, core.RegisteringBookFailedEventType, publisher.LastEvent().IsEventType())
}

func Test_CommandHandler_Handle_Error_NegativeCopies(t *testing.T) {
	// arrange
	lib := fixtures.EmptyLibrary(t)
	handler := registerbook.NewCommandHandler(lib)

	// act
	result, err := handler.Handle(context.Background(), registerbook.BuildCommand(
		fixtures.DuneKey, fixtures.DuneTitle, fixtures.DuneAuthor, fixtures.DuneYear, -1, fixtures.FakeNow,
	))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidCopyCount)
	assert.Equal(t, shell.OutcomeRejected, result.Outcome)
	assert.Equal(t, 0, lib.BookCount())
}
