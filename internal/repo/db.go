package repo

import (
	"errors"
	"fmt"
	"strings"

	"flashcards/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateUsername — нарушение уникальности users.username.
var ErrDuplicateUsername = errors.New("username is not unique")

// InitDB открывает БД по DSN и применяет миграции.
// DSN вида postgres://… или host=… открывается драйвером PostgreSQL,
// всё остальное считается файлом/URI SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dial gorm.Dialector
	if isPostgresDSN(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: withForeignKeys(dsn)}
	}

	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт таблицы users, decks, cards и внешние ключи с ON DELETE CASCADE.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Deck{}, &model.Card{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// withForeignKeys включает PRAGMA foreign_keys для каждого соединения SQLite,
// без неё каскадное удаление не работает.
func withForeignKeys(dsn string) string {
	if dsn == "" {
		dsn = "file:flashcards.sqlite3"
	}
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// isUniqueViolation распознаёт нарушение уникального индекса.
// Драйвер postgres переводится самим gorm (TranslateError), ошибки modernc — нет.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
			(code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE"))
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
