package service

import (
	"context"
	"errors"
	"fmt"

	"flashcards/internal/model"
	"flashcards/internal/repo"

	"gorm.io/gorm"
)

// DeckService управляет колодами и карточками. Веб-маршрутов у него нет,
// используется административной CLI.
type DeckService struct {
	users *UserService
	decks repo.DeckRepository
	cards repo.CardRepository
}

func NewDeckService(users *UserService, decks repo.DeckRepository, cards repo.CardRepository) *DeckService {
	return &DeckService{users: users, decks: decks, cards: cards}
}

// CreateDeck создаёт колоду для пользователя с указанным именем.
func (s *DeckService) CreateDeck(ctx context.Context, owner, name, desc string) (*model.Deck, error) {
	user, err := s.users.lookup(ctx, owner)
	if err != nil {
		return nil, err
	}
	deck := &model.Deck{OwnerPK: user.PK, Name: name, Desc: desc}
	if err := s.decks.CreateDeck(ctx, deck); err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	return deck, nil
}

func (s *DeckService) ListDecks(ctx context.Context, owner string) ([]model.Deck, error) {
	user, err := s.users.lookup(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.decks.ListDecksByOwner(ctx, user.PK)
}

// DeleteDeck удаляет колоду вместе с карточками.
func (s *DeckService) DeleteDeck(ctx context.Context, deckPK uint) error {
	err := s.decks.DeleteDeck(ctx, deckPK)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoSuchDeck
	}
	return err
}

// AddCard добавляет карточку в конец колоды.
func (s *DeckService) AddCard(ctx context.Context, deckPK uint, front, back string) (*model.Card, error) {
	if err := s.ensureDeck(ctx, deckPK); err != nil {
		return nil, err
	}
	card := &model.Card{DeckPK: deckPK, Front: front, Back: back}
	if err := s.cards.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// ListCards возвращает карточки колоды по порядку номеров.
func (s *DeckService) ListCards(ctx context.Context, deckPK uint) ([]model.Card, error) {
	if err := s.ensureDeck(ctx, deckPK); err != nil {
		return nil, err
	}
	return s.cards.ListCardsByDeck(ctx, deckPK)
}

func (s *DeckService) ensureDeck(ctx context.Context, deckPK uint) error {
	_, err := s.decks.GetDeck(ctx, deckPK)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoSuchDeck
	}
	if err != nil {
		return fmt.Errorf("load deck %d: %w", deckPK, err)
	}
	return nil
}
