package usecase

import (
	"log"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"
)

// systemActor attributes transitions performed by the policy itself
const systemActor = "system"

// RunAutoPostpone postpones the board's in-column cards whose last activity
// predates the board's effective period (board override, else account default,
// else the hard fallback). Already-postponed cards are never candidates, so
// re-running is a no-op. One card's failure never aborts the rest of the
// batch; it is reported in the result instead.
func (u *lifecycleUsecase) RunAutoPostpone(boardID string) (*AutoPostponeResult, error) {
	board, err := u.boardRepo.FindByIDAnyAccount(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	days := u.effectivePostponeDays(board)
	cutoff := time.Now().AddDate(0, 0, -days)

	candidates, err := u.cardRepo.FindAutoPostponeCandidates(board.ID, cutoff)
	if err != nil {
		return nil, err
	}

	result := &AutoPostponeResult{BoardID: board.ID, Evaluated: len(candidates)}
	for _, card := range candidates {
		if _, err := u.Postpone(card.AccountID, systemActor, card.ID); err != nil {
			log.Printf("[AutoPostpone] Failed to postpone card %s: %v", card.ID, err)
			result.Failures = append(result.Failures, AutoPostponeFailure{
				CardID: card.ID,
				Error:  err.Error(),
			})
			continue
		}
		result.Postponed++
	}

	return result, nil
}

// effectivePostponeDays resolves the period: first non-nil wins between the
// board-level and account-level setting, then the configured fallback.
func (u *lifecycleUsecase) effectivePostponeDays(board *boarddomain.Board) int {
	if board.AutoPostponeDays != nil && *board.AutoPostponeDays > 0 {
		return *board.AutoPostponeDays
	}
	if u.accounts != nil {
		if days, err := u.accounts.AutoPostponeDaysFor(board.AccountID); err == nil && days != nil && *days > 0 {
			return *days
		}
	}
	return u.defaultPostponeDays
}
