package model

import "gorm.io/gorm"

type DishCategory struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex"`
	Description string
}

type Dish struct {
	gorm.Model
	EstablishmentID uint
	CategoryID      *uint
	Name            string
	Description     string
	Price           float64
	Currency        string `gorm:"default:PEN"`

	// JSON-encoded string lists.
	Ingredients string
	Allergens   string

	IsVegetarian    bool
	IsVegan         bool
	IsGlutenFree    bool
	Calories        *int
	PrepTimeMinutes *int
	SpiceLevel      *int

	// Denormalized aggregates, written only by the rating recompute.
	AverageRating float64
	TotalReviews  int64

	IsAvailable bool `gorm:"default:true"`

	Establishment Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category      *DishCategory `gorm:"foreignKey:CategoryID"`
}

// DishListing is one row of the public dish catalogue, joined with its
// establishment, category and primary image.
type DishListing struct {
	ID              uint
	EstablishmentID uint
	CategoryID      *uint
	Name            string
	Description     string
	Price           float64
	Currency        string
	Ingredients     string
	Allergens       string
	IsVegetarian    bool
	IsVegan         bool
	IsGlutenFree    bool
	Calories        *int
	PrepTimeMinutes *int
	SpiceLevel      *int
	AverageRating   float64
	TotalReviews    int64
	IsAvailable     bool
	BusinessName    string
	City            string
	CuisineType     *string
	CategoryName    *string
	PrimaryImageURL *string
}

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

type DishFilter struct {
	Search       *string
	Category     *string
	City         *string
	MinPrice     *float64
	MaxPrice     *float64
	IsVegetarian bool
	IsVegan      bool
	IsGlutenFree bool
	SortBy       string
	SortOrder    SortOrder
	Limit        int
	Offset       int
}
