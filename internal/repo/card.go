package repo

import (
	"context"

	"flashcards/internal/model"

	"gorm.io/gorm"
)

// CardRepository — контракт доступа к карточкам.
type CardRepository interface {
	// CreateCard вставляет карточку. Если Number не задан, присваивается
	// следующий номер в колоде (max+1, нумерация с 1).
	CreateCard(ctx context.Context, card *model.Card) error
	ListCardsByDeck(ctx context.Context, deckPK uint) ([]model.Card, error)
}

type cardRepo struct {
	db *gorm.DB
}

// NewCardRepository создаёт реализацию репозитория карточек.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepo{db: db}
}

func (r *cardRepo) CreateCard(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if card.Number == 0 {
			var last int
			err := tx.Model(&model.Card{}).
				Where("deck_pk = ?", card.DeckPK).
				Select("COALESCE(MAX(number), 0)").
				Scan(&last).Error
			if err != nil {
				return err
			}
			card.Number = last + 1
		}
		return tx.Omit("Deck").Create(card).Error
	})
}

func (r *cardRepo) ListCardsByDeck(ctx context.Context, deckPK uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("deck_pk = ?", deckPK).
		Order("number").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}
