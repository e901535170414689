package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"saborlocal.pe/SaborLocal/pkg/model"
)

var ErrImageNotFound = errors.New("image not found")

type ImageRepository interface {
	AddImage(ctx context.Context, image model.Image) (*model.Image, error)
	GetImagesByEntity(ctx context.Context, entityType model.EntityType, entityID uint) ([]*model.Image, error)
	GetImageForUploader(ctx context.Context, imageID uint, userID uint) (*model.Image, error)
	DeleteImage(ctx context.Context, imageID uint) error
	ClearPrimary(ctx context.Context, entityType model.EntityType, entityID uint) error
	SetPrimaryImage(ctx context.Context, entityType model.EntityType, entityID uint, imageID uint) error
}

func (r *Repository) AddImage(ctx context.Context, image model.Image) (*model.Image, error) {
	if result := r.DB.WithContext(ctx).Create(&image); result.Error != nil {
		return nil, result.Error
	}

	return &image, nil
}

func (r *Repository) GetImagesByEntity(ctx context.Context, entityType model.EntityType, entityID uint) ([]*model.Image, error) {
	var images []*model.Image

	result := r.DB.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("is_primary DESC, created_at DESC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	return images, nil
}

// GetImageForUploader loads an image only when it was uploaded by the
// given user.
func (r *Repository) GetImageForUploader(ctx context.Context, imageID uint, userID uint) (*model.Image, error) {
	var image model.Image

	result := r.DB.WithContext(ctx).
		Where("id = ? AND uploaded_by = ?", imageID, userID).
		First(&image)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}

		return nil, result.Error
	}

	return &image, nil
}

func (r *Repository) DeleteImage(ctx context.Context, imageID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Image{}, imageID)

	return result.Error
}

func (r *Repository) ClearPrimary(ctx context.Context, entityType model.EntityType, entityID uint) error {
	result := r.DB.WithContext(ctx).Model(&model.Image{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Update("is_primary", false)

	return result.Error
}

// SetPrimaryImage clears the scope's primary flags and sets the target in
// one transaction, so the scope never ends up with two primaries.
func (r *Repository) SetPrimaryImage(ctx context.Context, entityType model.EntityType, entityID uint, imageID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Image{}).
			Where("entity_type = ? AND entity_id = ?", entityType, entityID).
			Update("is_primary", false)
		if result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.Image{}).
			Where("id = ?", imageID).
			Update("is_primary", true)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrImageNotFound
		}

		return nil
	})
}
