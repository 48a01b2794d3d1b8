package repo

import (
	"context"
	"testing"

	"flashcards/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// хелпер: пользователь с колодой из n карточек
func seedDeck(t *testing.T, db *gorm.DB, username string, n int) (*model.User, *model.Deck) {
	t.Helper()
	ctx := context.Background()
	u, err := NewUserRepository(db).CreateUser(ctx, &model.User{Username: username, PasswordHash: "h"})
	require.NoError(t, err)

	d := &model.Deck{OwnerPK: u.PK, Name: username + "-deck", Desc: "desc"}
	require.NoError(t, NewDeckRepository(db).CreateDeck(ctx, d))

	cr := NewCardRepository(db)
	for i := 0; i < n; i++ {
		require.NoError(t, cr.CreateCard(ctx, &model.Card{DeckPK: d.PK, Front: "f", Back: "b"}))
	}
	return u, d
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestDeckRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u, d := seedDeck(t, db, "alice", 0)
	r := NewDeckRepository(db)

	got, err := r.GetDeck(ctx, d.PK)
	require.NoError(t, err)
	assert.Equal(t, "alice-deck", got.Name)
	assert.Equal(t, "desc", got.Desc)
	assert.Equal(t, u.PK, got.OwnerPK)

	second := &model.Deck{OwnerPK: u.PK, Name: "second"}
	require.NoError(t, r.CreateDeck(ctx, second))

	decks, err := r.ListDecksByOwner(ctx, u.PK)
	require.NoError(t, err)
	if assert.Len(t, decks, 2) {
		assert.Equal(t, d.PK, decks[0].PK)
		assert.Equal(t, "second", decks[1].Name)
	}

	_, err = r.GetDeck(ctx, 9999)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestCardRepository_Numbering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, d := seedDeck(t, db, "alice", 3)
	_, other := seedDeck(t, db, "bob", 1)
	r := NewCardRepository(db)

	cards, err := r.ListCardsByDeck(ctx, d.PK)
	require.NoError(t, err)
	if assert.Len(t, cards, 3) {
		for i, c := range cards {
			assert.Equal(t, i+1, c.Number)
		}
	}

	// явный номер сохраняется как есть
	require.NoError(t, r.CreateCard(ctx, &model.Card{DeckPK: d.PK, Front: "x", Back: "y", Number: 10}))
	next := &model.Card{DeckPK: d.PK, Front: "z", Back: "w"}
	require.NoError(t, r.CreateCard(ctx, next))
	assert.Equal(t, 11, next.Number)

	// нумерация независима для каждой колоды
	cards, err = r.ListCardsByDeck(ctx, other.PK)
	require.NoError(t, err)
	if assert.Len(t, cards, 1) {
		assert.Equal(t, 1, cards[0].Number)
	}
}

func TestCascade_DeleteUserRemovesDecksAndCards(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice, _ := seedDeck(t, db, "alice", 3)
	_, bobDeck := seedDeck(t, db, "bob", 2)

	// вторая колода у alice
	extra := &model.Deck{OwnerPK: alice.PK, Name: "extra"}
	require.NoError(t, NewDeckRepository(db).CreateDeck(ctx, extra))
	require.NoError(t, NewCardRepository(db).CreateCard(ctx, &model.Card{DeckPK: extra.PK, Front: "f", Back: "b"}))

	require.Equal(t, int64(3), countRows(t, db, &model.Deck{}))
	require.Equal(t, int64(6), countRows(t, db, &model.Card{}))

	require.NoError(t, NewUserRepository(db).DeleteUser(ctx, alice.PK))

	// у alice не осталось ни колод, ни карточек; данные bob на месте
	assert.Equal(t, int64(1), countRows(t, db, &model.Deck{}))
	assert.Equal(t, int64(2), countRows(t, db, &model.Card{}))

	decks, err := NewDeckRepository(db).ListDecksByOwner(ctx, alice.PK)
	require.NoError(t, err)
	assert.Empty(t, decks)

	cards, err := NewCardRepository(db).ListCardsByDeck(ctx, bobDeck.PK)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestCascade_DeleteDeckRemovesCards(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, d := seedDeck(t, db, "alice", 4)

	require.NoError(t, NewDeckRepository(db).DeleteDeck(ctx, d.PK))
	assert.Equal(t, int64(0), countRows(t, db, &model.Card{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.User{}))

	assert.Equal(t, gorm.ErrRecordNotFound, NewDeckRepository(db).DeleteDeck(ctx, d.PK))
}

func TestForeignKey_DeckRequiresExistingOwner(t *testing.T) {
	db := newTestDB(t)
	err := NewDeckRepository(db).CreateDeck(context.Background(), &model.Deck{OwnerPK: 4242, Name: "orphan"})
	assert.Error(t, err)
}
