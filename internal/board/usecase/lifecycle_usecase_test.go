package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	boarddomain "fizzy-backend/internal/board/domain"
)

func TestCreateCard(t *testing.T) {
	f := newFixture()

	t.Run("draft by default", func(t *testing.T) {
		card, err := f.lifecycle.CreateCard(testAccount, testActor, CreateCardRequest{
			BoardID: f.board.ID,
			Title:   "Write docs",
		})
		require.NoError(t, err)
		assert.Equal(t, boarddomain.CardStatusDraft, card.Status)
		assert.Equal(t, testActor, card.CreatorID)
	})

	t.Run("published lands in triage", func(t *testing.T) {
		card := f.publishedCard("Fix login")
		assert.Equal(t, boarddomain.CardStateAwaitingTriage, card.State())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := f.lifecycle.CreateCard(testAccount, testActor, CreateCardRequest{
			BoardID: f.board.ID,
			Title:   "   ",
		})
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("unknown board rejected", func(t *testing.T) {
		_, err := f.lifecycle.CreateCard(testAccount, testActor, CreateCardRequest{
			BoardID: "nope",
			Title:   "Orphan",
		})
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}

func TestPublishCard(t *testing.T) {
	f := newFixture()

	draft, err := f.lifecycle.CreateCard(testAccount, testActor, CreateCardRequest{
		BoardID: f.board.ID,
		Title:   "Draft",
	})
	require.NoError(t, err)

	card, err := f.lifecycle.PublishCard(testAccount, testActor, draft.ID)
	require.NoError(t, err)
	assert.True(t, card.Published())
	assert.Equal(t, boarddomain.CardStateAwaitingTriage, card.State())

	// Publishing twice is a no-op
	again, err := f.lifecycle.PublishCard(testAccount, testActor, draft.ID)
	require.NoError(t, err)
	assert.True(t, again.Published())
}

func TestTriageInto(t *testing.T) {
	t.Run("from awaiting triage", func(t *testing.T) {
		f := newFixture()
		card := f.publishedCard("Fix login")
		todo := f.columnNamed("Todo")

		result, err := f.lifecycle.TriageInto(testAccount, testActor, card.ID, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, boarddomain.CardStateInColumn, result.NewState)
		assert.False(t, result.PromptForTime)
		require.NotNil(t, result.Card.ColumnID)
		assert.Equal(t, todo.ID, *result.Card.ColumnID)
	})

	t.Run("from postponed clears the overlay", func(t *testing.T) {
		f := newFixture()
		card := f.publishedCard("Fix login")
		_, err := f.lifecycle.Postpone(testAccount, testActor, card.ID)
		require.NoError(t, err)

		todo := f.columnNamed("Todo")
		result, err := f.lifecycle.TriageInto(testAccount, testActor, card.ID, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, boarddomain.CardStateInColumn, result.NewState)
		assert.Nil(t, result.Card.PostponedAt)
	})

	t.Run("draft cannot be triaged", func(t *testing.T) {
		f := newFixture()
		draft, err := f.lifecycle.CreateCard(testAccount, testActor, CreateCardRequest{
			BoardID: f.board.ID,
			Title:   "Draft",
		})
		require.NoError(t, err)

		_, err = f.lifecycle.TriageInto(testAccount, testActor, draft.ID, f.columnNamed("Todo").ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("in-column card cannot be re-triaged", func(t *testing.T) {
		f := newFixture()
		card := f.publishedCard("Fix login")
		todo := f.columnNamed("Todo")
		_, err := f.lifecycle.TriageInto(testAccount, testActor, card.ID, todo.ID)
		require.NoError(t, err)

		_, err = f.lifecycle.TriageInto(testAccount, testActor, card.ID, f.columnNamed("In Progress").ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("column on another board leaves the card unchanged", func(t *testing.T) {
		f := newFixture()
		card := f.publishedCard("Fix login")

		other, err := f.boards.CreateBoard(testAccount, testActor, CreateBoardRequest{Name: "Other"})
		require.NoError(t, err)
		otherColumns, err := f.columnRepo.FindByBoard(testAccount, other.ID)
		require.NoError(t, err)

		_, err = f.lifecycle.TriageInto(testAccount, testActor, card.ID, otherColumns[0].ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		unchanged, err := f.lifecycle.GetCard(testAccount, card.ID)
		require.NoError(t, err)
		assert.Nil(t, unchanged.ColumnID)
		assert.Equal(t, boarddomain.CardStateAwaitingTriage, unchanged.State())
	})
}

func TestSendBackToTriage(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Fix login")
	todo := f.columnNamed("Todo")
	_, err := f.lifecycle.TriageInto(testAccount, testActor, card.ID, todo.ID)
	require.NoError(t, err)

	sent, err := f.lifecycle.SendBackToTriage(testAccount, testActor, card.ID)
	require.NoError(t, err)
	assert.Equal(t, boarddomain.CardStateAwaitingTriage, sent.State())
	assert.Nil(t, sent.ColumnID)

	// Idempotent from awaiting triage
	again, err := f.lifecycle.SendBackToTriage(testAccount, testActor, card.ID)
	require.NoError(t, err)
	assert.Equal(t, boarddomain.CardStateAwaitingTriage, again.State())

	_, err = f.lifecycle.Close(testAccount, testActor, card.ID)
	require.NoError(t, err)
	_, err = f.lifecycle.SendBackToTriage(testAccount, testActor, card.ID)
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestPostpone(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Fix login")
	todo := f.columnNamed("Todo")
	_, err := f.lifecycle.TriageInto(testAccount, testActor, card.ID, todo.ID)
	require.NoError(t, err)

	postponed, err := f.lifecycle.Postpone(testAccount, testActor, card.ID)
	require.NoError(t, err)
	assert.Equal(t, boarddomain.CardStatePostponed, postponed.State())

	// The overlay does not clear the column assignment
	require.NotNil(t, postponed.ColumnID)
	assert.Equal(t, todo.ID, *postponed.ColumnID)
	assert.Equal(t, boarddomain.CardStateInColumn, postponed.PrimaryState())

	// Re-postponing is a no-op
	firstAt := *postponed.PostponedAt
	again, err := f.lifecycle.Postpone(testAccount, testActor, card.ID)
	require.NoError(t, err)
	assert.Equal(t, firstAt, *again.PostponedAt)
}

func TestCloseAndReopen(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Fix login")
	_, err := f.lifecycle.Postpone(testAccount, testActor, card.ID)
	require.NoError(t, err)

	closed, err := f.lifecycle.Close(testAccount, testActor, card.ID)
	require.NoError(t, err)
	assert.Equal(t, boarddomain.CardStateClosed, closed.State())
	assert.Equal(t, testActor, closed.ClosedBy)

	// Closing keeps the postponed flag
	assert.True(t, closed.PostponedOverlay())

	_, err = f.lifecycle.Close(testAccount, testActor, card.ID)
	assert.ErrorIs(t, err, ErrAlreadyClosed)

	// Reopen restores the card where it was: the surviving overlay wins
	reopened, err := f.lifecycle.Reopen(testAccount, testActor, card.ID)
	require.NoError(t, err)
	assert.Equal(t, boarddomain.CardStatePostponed, reopened.State())
	assert.Empty(t, reopened.ClosedBy)

	_, err = f.lifecycle.Reopen(testAccount, testActor, card.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAddTimeEntry(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Fix login")

	t.Run("rejects zero and negative hours", func(t *testing.T) {
		_, err := f.lifecycle.AddTimeEntry(testAccount, testActor, card.ID, 0, "")
		assert.ErrorIs(t, err, ErrInvalidHours)
		_, err = f.lifecycle.AddTimeEntry(testAccount, testActor, card.ID, -1, "")
		assert.ErrorIs(t, err, ErrInvalidHours)

		entries, err := f.lifecycle.CardTimeEntries(testAccount, card.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("writes entry and activity comment together", func(t *testing.T) {
		entry, err := f.lifecycle.AddTimeEntry(testAccount, testActor, card.ID, 2.5, "fix bug")
		require.NoError(t, err)
		assert.Equal(t, 2.5, entry.Hours)

		entries, err := f.lifecycle.CardTimeEntries(testAccount, card.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		comments, err := f.lifecycle.CardComments(testAccount, card.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Alice added 2.5h for fix bug", comments[0].Body)

		total, err := f.lifecycle.CardTotalHours(testAccount, card.ID)
		require.NoError(t, err)
		assert.Equal(t, 2.5, total)
	})

	t.Run("filters the ledger per user", func(t *testing.T) {
		_, err := f.lifecycle.AddTimeEntry(testAccount, "user-3", card.ID, 4, "")
		require.NoError(t, err)

		mine, err := f.lifecycle.CardTimeEntriesForUser(testAccount, card.ID, testActor)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, 2.5, mine[0].Hours)

		total, err := f.lifecycle.CardTotalHours(testAccount, card.ID)
		require.NoError(t, err)
		assert.Equal(t, 6.5, total)
	})

	t.Run("falls back to the actor ID without a display name", func(t *testing.T) {
		other := f.publishedCard("Other card")
		_, err := f.lifecycle.AddTimeEntry(testAccount, "user-2", other.ID, 1, "")
		require.NoError(t, err)

		comments, err := f.lifecycle.CardComments(testAccount, other.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "user-2 added 1h", comments[0].Body)
	})
}

func TestTimeEntryCommentBody(t *testing.T) {
	assert.Equal(t, "Alice added 2.5h for fix bug", timeEntryCommentBody("Alice", 2.5, "fix bug"))
	assert.Equal(t, "Alice added 2h", timeEntryCommentBody("Alice", 2, ""))
	assert.Equal(t, "Alice added 0.25h", timeEntryCommentBody("Alice", 0.25, ""))
}

func TestTenantScoping(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Fix login")

	_, err := f.lifecycle.GetCard("other-account", card.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = f.lifecycle.Close("other-account", testActor, card.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestLifecycleEvents(t *testing.T) {
	f := newFixture()
	card := f.publishedCard("Fix login")
	_, err := f.lifecycle.TriageInto(testAccount, "user-2", card.ID, f.columnNamed("Todo").ID)
	require.NoError(t, err)

	require.NotEmpty(t, f.dispatcher.events)
	last := f.dispatcher.events[len(f.dispatcher.events)-1]
	assert.Equal(t, boarddomain.EventCardTriaged, last.Type)
	assert.Equal(t, card.ID, last.CardID)
	assert.Equal(t, testActor, last.CreatorID)
	assert.Equal(t, "user-2", last.ActorID)
}
