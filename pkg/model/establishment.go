package model

import (
	"gorm.io/gorm"
)

type Establishment struct {
	gorm.Model
	UserID       uint `gorm:"uniqueIndex"`
	BusinessName string
	Description  string
	Address      string
	City         string
	Country      string
	Phone        *string
	CuisineType  *string

	// Denormalized aggregates, written only by the rating recompute.
	AverageRating float64
	TotalReviews  int64

	IsActive bool `gorm:"default:true"`

	Owner User `gorm:"foreignKey:UserID"`
}
