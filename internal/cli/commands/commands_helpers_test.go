package commands

import (
	"bytes"
	"context"
	"testing"

	"flashcards/internal/credential"
	"flashcards/internal/repo"
	"flashcards/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestEnv собирает окружение команд поверх отдельной in-memory SQLite.
func newTestEnv(t *testing.T) *Env {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	users := service.NewUserService(repo.NewUserRepository(db), credential.Blake2b{})
	return &Env{
		Users: users,
		Decks: service.NewDeckService(users, repo.NewDeckRepository(db), repo.NewCardRepository(db)),
	}
}

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// run выполняет команду и возвращает код выхода и вывод.
func run(t *testing.T, env *Env, args ...string) (int, string) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() {
		code = Dispatch(context.Background(), env, args)
	})
	return code, out
}

func register(t *testing.T, env *Env, username string) {
	t.Helper()
	_, err := env.Users.Register(context.Background(), service.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "pw123",
	})
	require.NoError(t, err)
}
