package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staleCard puts a published card in a column and backdates its last activity
func staleCard(t *testing.T, f *fixture, title string, age time.Duration) string {
	t.Helper()
	card := f.publishedCard(title)
	_, err := f.lifecycle.TriageInto(testAccount, testActor, card.ID, f.columnNamed("Todo").ID)
	require.NoError(t, err)
	f.cardRepo.cards[card.ID].LastActiveAt = time.Now().Add(-age)
	return card.ID
}

func TestRunAutoPostpone(t *testing.T) {
	f := newFixture()

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, staleCard(t, f, "Stale", 40*24*time.Hour))
	}
	// One fresh card must stay untouched
	fresh := f.publishedCard("Fresh")
	_, err := f.lifecycle.TriageInto(testAccount, testActor, fresh.ID, f.columnNamed("Todo").ID)
	require.NoError(t, err)

	// One stale card fails at storage level; the rest of the batch proceeds
	f.cardRepo.failUpdate[ids[3]] = true

	result, err := f.lifecycle.RunAutoPostpone(f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Evaluated)
	assert.Equal(t, 9, result.Postponed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, ids[3], result.Failures[0].CardID)

	freshCard, err := f.lifecycle.GetCard(testAccount, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, freshCard.PostponedAt)

	// Postponed cards are no longer candidates; re-running only retries the
	// failed one
	f.cardRepo.failUpdate = map[string]bool{}
	rerun, err := f.lifecycle.RunAutoPostpone(f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rerun.Evaluated)
	assert.Equal(t, 1, rerun.Postponed)
}

func TestRunAutoPostponeBoardOverride(t *testing.T) {
	f := newFixture()

	// Board period of 60 days: a 40-day-old card is not yet stale
	days := 60
	f.board.AutoPostponeDays = &days
	staleCard(t, f, "Fortyish", 40*24*time.Hour)

	result, err := f.lifecycle.RunAutoPostpone(f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Evaluated)
	assert.Equal(t, 0, result.Postponed)
}

func TestRunAutoPostponeAccountFallback(t *testing.T) {
	f := newFixture()

	// No board period; the account-level setting decides
	f.board.AutoPostponeDays = nil
	days := 10
	f.settings.days = &days
	staleCard(t, f, "Two weeks old", 14*24*time.Hour)

	result, err := f.lifecycle.RunAutoPostpone(f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Evaluated)
	assert.Equal(t, 1, result.Postponed)
}

func TestRunAutoPostponeUnknownBoard(t *testing.T) {
	f := newFixture()
	_, err := f.lifecycle.RunAutoPostpone("missing")
	assert.ErrorIs(t, err, ErrBoardNotFound)
}
