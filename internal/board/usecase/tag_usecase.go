package usecase

import (
	boarddomain "fizzy-backend/internal/board/domain"
	"fizzy-backend/internal/board/repository"
)

// tagUsecase implements TagUsecase interface
type tagUsecase struct {
	tagRepo  repository.TagRepository
	cardRepo repository.CardRepository
}

// NewTagUsecase creates a new instance of tagUsecase
func NewTagUsecase(tagRepo repository.TagRepository, cardRepo repository.CardRepository) TagUsecase {
	return &tagUsecase{
		tagRepo:  tagRepo,
		cardRepo: cardRepo,
	}
}

// ToggleTag flips the label on the card. The label match is exact and
// case-sensitive within the account; the tag record is created on first use
// and left in place on detach.
func (u *tagUsecase) ToggleTag(accountID, cardID, label string) (bool, error) {
	if label == "" {
		return false, ErrEmptyTagLabel
	}

	card, err := u.cardRepo.FindByID(accountID, cardID)
	if err != nil {
		return false, err
	}
	if card == nil {
		return false, ErrCardNotFound
	}

	tag, err := u.tagRepo.FindByLabel(accountID, label)
	if err != nil {
		return false, err
	}
	if tag == nil {
		tag = &boarddomain.Tag{
			AccountID: accountID,
			Label:     label,
		}
		if err := u.tagRepo.Create(tag); err != nil {
			return false, err
		}
	}

	attached, err := u.tagRepo.Attached(card.ID, tag.ID)
	if err != nil {
		return false, err
	}

	if attached {
		if err := u.tagRepo.Detach(card.ID, tag.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := u.tagRepo.Attach(card.ID, tag.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (u *tagUsecase) CardTags(accountID, cardID string) ([]*boarddomain.Tag, error) {
	card, err := u.cardRepo.FindByID(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return u.tagRepo.FindByCard(card.ID)
}
