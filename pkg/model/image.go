package model

import "gorm.io/gorm"

// EntityType tags which kind of record an image is attached to.
type EntityType string

const (
	EntityDish          EntityType = "dish"
	EntityEstablishment EntityType = "establishment"
	EntityReview        EntityType = "review"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityDish, EntityEstablishment, EntityReview:
		return true
	}

	return false
}

type Image struct {
	gorm.Model
	URL        string
	AltText    string
	UploadedBy uint
	EntityType EntityType `gorm:"index:idx_image_entity"`
	EntityID   uint       `gorm:"index:idx_image_entity"`
	IsPrimary  bool
	FileSize   *int64
}
