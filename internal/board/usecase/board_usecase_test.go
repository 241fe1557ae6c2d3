package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBoard(t *testing.T) {
	f := newFixture()

	t.Run("creates the default columns", func(t *testing.T) {
		columns, err := f.boards.ListColumns(testAccount, f.board.ID)
		require.NoError(t, err)
		require.Len(t, columns, 3)
		assert.Equal(t, "Todo", columns[0].Name)
		assert.Equal(t, "In Progress", columns[1].Name)
		assert.Equal(t, "Verifying", columns[2].Name)
	})

	t.Run("default period set once at creation", func(t *testing.T) {
		require.NotNil(t, f.board.AutoPostponeDays)
		assert.Equal(t, 30, *f.board.AutoPostponeDays)
	})

	t.Run("account period suppresses the default", func(t *testing.T) {
		days := 14
		f.settings.days = &days
		board, err := f.boards.CreateBoard(testAccount, testActor, CreateBoardRequest{Name: "With account period"})
		require.NoError(t, err)
		assert.Nil(t, board.AutoPostponeDays)
		f.settings.days = nil
	})

	t.Run("explicit period wins", func(t *testing.T) {
		days := 7
		board, err := f.boards.CreateBoard(testAccount, testActor, CreateBoardRequest{
			Name:             "Weekly",
			AutoPostponeDays: &days,
		})
		require.NoError(t, err)
		require.NotNil(t, board.AutoPostponeDays)
		assert.Equal(t, 7, *board.AutoPostponeDays)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := f.boards.CreateBoard(testAccount, testActor, CreateBoardRequest{Name: "  "})
		assert.ErrorIs(t, err, ErrEmptyBoardName)
	})
}

func TestUpdateColumnTouch(t *testing.T) {
	f := newFixture()
	todo := f.columnNamed("Todo")

	newName := "Backlog"
	column, err := f.boards.UpdateColumn(testAccount, todo.ID, UpdateColumnRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Backlog", column.Name)

	empty := "   "
	_, err = f.boards.UpdateColumn(testAccount, todo.ID, UpdateColumnRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyColumnName)
}

func TestTotalTrackedHours(t *testing.T) {
	f := newFixture()

	t.Run("zero when nothing is logged", func(t *testing.T) {
		total, err := f.boards.TotalTrackedHours(testAccount, f.board.ID, StateAwaitingTriage)
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("buckets follow the live card state", func(t *testing.T) {
		card := f.publishedCard("Tracked")
		_, err := f.lifecycle.AddTimeEntry(testAccount, testActor, card.ID, 3, "")
		require.NoError(t, err)

		total, err := f.boards.TotalTrackedHours(testAccount, f.board.ID, StateAwaitingTriage)
		require.NoError(t, err)
		assert.Equal(t, 3.0, total)

		todo := f.columnNamed("Todo")
		_, err = f.lifecycle.TriageInto(testAccount, testActor, card.ID, todo.ID)
		require.NoError(t, err)

		// Hours moved buckets with the card
		total, err = f.boards.TotalTrackedHours(testAccount, f.board.ID, StateAwaitingTriage)
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)

		total, err = f.boards.TotalTrackedHours(testAccount, f.board.ID, "column:"+todo.ID)
		require.NoError(t, err)
		assert.Equal(t, 3.0, total)

		_, err = f.lifecycle.Close(testAccount, testActor, card.ID)
		require.NoError(t, err)
		total, err = f.boards.TotalTrackedHours(testAccount, f.board.ID, StateClosed)
		require.NoError(t, err)
		assert.Equal(t, 3.0, total)
	})

	t.Run("column from another board rejected", func(t *testing.T) {
		other, err := f.boards.CreateBoard(testAccount, testActor, CreateBoardRequest{Name: "Second"})
		require.NoError(t, err)
		otherColumns, err := f.boards.ListColumns(testAccount, other.ID)
		require.NoError(t, err)

		_, err = f.boards.TotalTrackedHours(testAccount, f.board.ID, "column:"+otherColumns[0].ID)
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("unknown selector rejected", func(t *testing.T) {
		_, err := f.boards.TotalTrackedHours(testAccount, f.board.ID, "bogus")
		assert.ErrorIs(t, err, ErrUnknownState)
	})
}
