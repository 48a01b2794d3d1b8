// Package credential хеширует пароли и сверяет их с сохранёнными дайджестами.
package credential

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/bcrypt"
)

// Имена схем хеширования, принимаемые New.
const (
	SchemeBlake2b = "blake2b"
	SchemeBcrypt  = "bcrypt"
)

// ErrUnknownScheme возвращается New для неизвестного имени схемы.
var ErrUnknownScheme = errors.New("unknown password scheme")

// Hasher вычисляет дайджест пароля и проверяет пароль по дайджесту.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// New возвращает Hasher по имени схемы. Пустое имя означает blake2b.
func New(scheme string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeBlake2b:
		return Blake2b{}, nil
	case SchemeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Blake2b — унаследованная схема: hex от BLAKE2b-512 без соли и ключа.
// Совместима с дайджестами, уже лежащими в таблице users, но слаба:
// одинаковые пароли дают одинаковые дайджесты.
type Blake2b struct{}

// Hash возвращает 128 hex-символов.
func (Blake2b) Hash(plain string) (string, error) {
	sum := blake2b.Sum512([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// Verify сравнивает дайджесты целиком.
func (b Blake2b) Verify(plain, digest string) bool {
	h, _ := b.Hash(plain)
	return subtle.ConstantTimeCompare([]byte(h), []byte(digest)) == 1
}

// Bcrypt — схема с солью и растяжением ключа.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(out), nil
}

func (Bcrypt) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
