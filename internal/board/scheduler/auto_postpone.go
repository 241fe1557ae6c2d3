package scheduler

import (
	"log"
	"time"

	"fizzy-backend/internal/board/repository"
	"fizzy-backend/internal/board/usecase"
)

// AutoPostponeScheduler periodically sweeps every board and postpones cards
// that sat inactive in a column past the board's effective period
type AutoPostponeScheduler struct {
	lifecycle usecase.LifecycleUsecase
	boardRepo repository.BoardRepository
	interval  time.Duration
	stopChan  chan struct{}
}

// NewAutoPostponeScheduler creates a new scheduler
func NewAutoPostponeScheduler(
	lifecycle usecase.LifecycleUsecase,
	boardRepo repository.BoardRepository,
	interval time.Duration,
) *AutoPostponeScheduler {
	return &AutoPostponeScheduler{
		lifecycle: lifecycle,
		boardRepo: boardRepo,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *AutoPostponeScheduler) Start() {
	log.Printf("[AutoPostpone] Starting sweep scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				log.Println("[AutoPostpone] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *AutoPostponeScheduler) Stop() {
	close(s.stopChan)
}

// sweep evaluates every board. A board's failure never aborts the sweep.
func (s *AutoPostponeScheduler) sweep() {
	boards, err := s.boardRepo.FindAll()
	if err != nil {
		log.Printf("[AutoPostpone] Error listing boards: %v", err)
		return
	}

	for _, board := range boards {
		result, err := s.lifecycle.RunAutoPostpone(board.ID)
		if err != nil {
			log.Printf("[AutoPostpone] Error evaluating board %s: %v", board.ID, err)
			continue
		}
		if result.Postponed > 0 || len(result.Failures) > 0 {
			log.Printf("[AutoPostpone] Board %s: %d evaluated, %d postponed, %d failed",
				board.ID, result.Evaluated, result.Postponed, len(result.Failures))
		}
	}
}
