package repository

import (
	"time"

	boarddomain "fizzy-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card state predicates used by the ledger aggregates. Aggregation recomputes
// from current lifecycle state on every call; nothing is maintained
// incrementally.
const (
	awaitingTriageCards = "cards.status = 'published' AND cards.column_id IS NULL AND cards.postponed_at IS NULL AND cards.closed_at IS NULL"
	postponedCards      = "cards.status = 'published' AND cards.postponed_at IS NOT NULL AND cards.closed_at IS NULL"
	closedCards         = "cards.closed_at IS NOT NULL"
	openColumnCards     = "cards.status = 'published' AND cards.column_id = ? AND cards.closed_at IS NULL"
)

// timeEntryRepository implements TimeEntryRepository interface
type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new instance of timeEntryRepository
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepository{
		db: db,
	}
}

// CreateWithComment writes the ledger entry and its activity comment in one
// transaction so a failure leaves neither behind
func (r *timeEntryRepository) CreateWithComment(entry *boarddomain.TimeEntry, comment *boarddomain.Comment) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Create(comment).Error
	})
}

func (r *timeEntryRepository) FindByCard(accountID, cardID string) ([]*boarddomain.TimeEntry, error) {
	var entries []*boarddomain.TimeEntry
	err := r.db.Where("account_id = ? AND card_id = ?", accountID, cardID).
		Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) FindByCardAndUser(accountID, cardID, userID string) ([]*boarddomain.TimeEntry, error) {
	var entries []*boarddomain.TimeEntry
	err := r.db.Where("account_id = ? AND card_id = ? AND user_id = ?", accountID, cardID, userID).
		Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) SumHoursForCard(accountID, cardID string) (float64, error) {
	var total float64
	err := r.db.Model(&boarddomain.TimeEntry{}).
		Where("account_id = ? AND card_id = ?", accountID, cardID).
		Select("COALESCE(SUM(hours), 0)").Scan(&total).Error
	return total, err
}

func (r *timeEntryRepository) SumHoursAwaitingTriage(accountID, boardID string) (float64, error) {
	return r.sumHoursForBoardPredicate(accountID, boardID, awaitingTriageCards)
}

func (r *timeEntryRepository) SumHoursPostponed(accountID, boardID string) (float64, error) {
	return r.sumHoursForBoardPredicate(accountID, boardID, postponedCards)
}

func (r *timeEntryRepository) SumHoursClosed(accountID, boardID string) (float64, error) {
	return r.sumHoursForBoardPredicate(accountID, boardID, closedCards)
}

func (r *timeEntryRepository) SumHoursForColumn(accountID, columnID string) (float64, error) {
	var total float64
	err := r.db.Model(&boarddomain.TimeEntry{}).
		Joins("JOIN cards ON cards.id = time_entries.card_id").
		Where("time_entries.account_id = ?", accountID).
		Where(openColumnCards, columnID).
		Select("COALESCE(SUM(time_entries.hours), 0)").Scan(&total).Error
	return total, err
}

func (r *timeEntryRepository) sumHoursForBoardPredicate(accountID, boardID, predicate string) (float64, error) {
	var total float64
	err := r.db.Model(&boarddomain.TimeEntry{}).
		Joins("JOIN cards ON cards.id = time_entries.card_id").
		Where("time_entries.account_id = ? AND cards.board_id = ?", accountID, boardID).
		Where(predicate).
		Select("COALESCE(SUM(time_entries.hours), 0)").Scan(&total).Error
	return total, err
}
