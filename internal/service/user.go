package service

import (
	"context"
	"errors"
	"fmt"

	"flashcards/internal/credential"
	"flashcards/internal/model"
	"flashcards/internal/repo"
	"flashcards/internal/validate"

	"gorm.io/gorm"
)

// UserService инкапсулирует регистрацию, вход и получение текущего пользователя.
type UserService struct {
	repo   repo.UserRepository
	hasher credential.Hasher
}

func NewUserService(r repo.UserRepository, h credential.Hasher) *UserService {
	return &UserService{repo: r, hasher: h}
}

// RegisterInput — данные формы регистрации.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register создаёт пользователя.
//
// Имя и email проверяются независимо. Занятое имя перекрывает ошибку формата имени.
// Пока есть хотя бы одна ошибка поля, запись не создаётся; ошибки возвращаются
// как *FormError.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	fe := &FormError{
		Username: validate.Username(in.Username),
		Email:    validate.Email(in.Email),
	}

	existing, err := s.repo.GetUserByUsername(ctx, in.Username)
	switch {
	case err == nil && existing != nil:
		fe.Username = ErrUsernameTaken
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if fe.HasErrors() {
		return nil, fe
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: digest,
	})
	if errors.Is(err, repo.ErrDuplicateUsername) {
		// имя заняли между проверкой и вставкой
		return nil, &FormError{Username: ErrUsernameTaken}
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login проверяет пару имя/пароль. Для неизвестного имени пароль не проверяется.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user == nil) {
		return nil, &FormError{Username: ErrNoSuchUser}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, &FormError{Password: ErrWrongPassword}
	}
	return user, nil
}

// Current загружает пользователя из сессии.
// Если пользователь уже удалён, возвращает ErrSessionInvalid.
func (s *UserService) Current(ctx context.Context, pk uint) (*model.User, error) {
	user, err := s.repo.GetUserByPK(ctx, pk)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user == nil) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", pk, err)
	}
	return user, nil
}

// List возвращает всех пользователей по возрастанию pk.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// Delete удаляет пользователя по имени; его колоды и карточки удаляет БД.
func (s *UserService) Delete(ctx context.Context, username string) error {
	user, err := s.lookup(ctx, username)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteUser(ctx, user.PK); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoSuchUser
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) lookup(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user == nil) {
		return nil, ErrNoSuchUser
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
