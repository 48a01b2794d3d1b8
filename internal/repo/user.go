package repo

import (
	"context"

	"flashcards/internal/model"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к пользователям.
type UserRepository interface {
	// CreateUser вставляет пользователя. При занятом имени возвращает ErrDuplicateUsername.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByUsername ищет по имени; если не найден — gorm.ErrRecordNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// GetUserByPK ищет по первичному ключу; если не найден — gorm.ErrRecordNotFound.
	GetUserByPK(ctx context.Context, pk uint) (*model.User, error)

	ListUsers(ctx context.Context) ([]model.User, error)

	// DeleteUser удаляет пользователя; колоды и карточки удаляет БД каскадом.
	DeleteUser(ctx context.Context, pk uint) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByPK(ctx context.Context, pk uint) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("pk = ?", pk).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("pk").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) DeleteUser(ctx context.Context, pk uint) error {
	tx := r.db.WithContext(ctx).Where("pk = ?", pk).Delete(&model.User{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
