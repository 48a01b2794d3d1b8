package repo

import (
	"context"

	"flashcards/internal/model"

	"gorm.io/gorm"
)

// DeckRepository — контракт доступа к колодам.
type DeckRepository interface {
	CreateDeck(ctx context.Context, deck *model.Deck) error
	// GetDeck ищет колоду по ключу; если не найдена — gorm.ErrRecordNotFound.
	GetDeck(ctx context.Context, pk uint) (*model.Deck, error)
	ListDecksByOwner(ctx context.Context, ownerPK uint) ([]model.Deck, error)
	// DeleteDeck удаляет колоду вместе с карточками.
	DeleteDeck(ctx context.Context, pk uint) error
}

type deckRepo struct {
	db *gorm.DB
}

// NewDeckRepository создаёт реализацию репозитория колод.
func NewDeckRepository(db *gorm.DB) DeckRepository {
	return &deckRepo{db: db}
}

func (r *deckRepo) CreateDeck(ctx context.Context, deck *model.Deck) error {
	return r.db.WithContext(ctx).Omit("Owner", "Cards").Create(deck).Error
}

func (r *deckRepo) GetDeck(ctx context.Context, pk uint) (*model.Deck, error) {
	var d model.Deck
	if err := r.db.WithContext(ctx).Where("pk = ?", pk).Take(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deckRepo) ListDecksByOwner(ctx context.Context, ownerPK uint) ([]model.Deck, error) {
	var decks []model.Deck
	err := r.db.WithContext(ctx).
		Where("owner_pk = ?", ownerPK).
		Order("pk").
		Find(&decks).Error
	if err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *deckRepo) DeleteDeck(ctx context.Context, pk uint) error {
	tx := r.db.WithContext(ctx).Where("pk = ?", pk).Delete(&model.Deck{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
