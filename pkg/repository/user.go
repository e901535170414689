package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saborlocal.pe/SaborLocal/pkg/model"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEstablishmentNotFound = errors.New("establishment not found")
)

type UserRepository interface {
	AddUser(ctx context.Context, user model.User, establishment *model.Establishment) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetEstablishmentByID(ctx context.Context, establishmentID uint) (*model.Establishment, error)
	GetEstablishmentByUserID(ctx context.Context, userID uint) (*model.Establishment, error)
}

// AddUser creates the user and, for establishment accounts, its
// Establishment record in the same transaction.
func (r *Repository) AddUser(ctx context.Context, user model.User, establishment *model.Establishment) (*model.User, error) {
	user.UUID = uuid.New()

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&user); result.Error != nil {
			return result.Error
		}

		if establishment != nil {
			establishment.UserID = user.ID

			if result := tx.Create(establishment); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetEstablishmentByID(ctx context.Context, establishmentID uint) (*model.Establishment, error) {
	var establishment model.Establishment

	result := r.DB.WithContext(ctx).First(&establishment, establishmentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEstablishmentNotFound
		}

		return nil, result.Error
	}

	return &establishment, nil
}

func (r *Repository) GetEstablishmentByUserID(ctx context.Context, userID uint) (*model.Establishment, error) {
	var establishment model.Establishment

	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&establishment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEstablishmentNotFound
		}

		return nil, result.Error
	}

	return &establishment, nil
}
