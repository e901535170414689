package model

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID          uint  `gorm:"uniqueIndex:idx_review_unique"`
	EstablishmentID uint  `gorm:"uniqueIndex:idx_review_unique"`
	DishID          *uint `gorm:"uniqueIndex:idx_review_unique"`
	Rating          int
	Title           string
	Comment         string
	FoodRating      *int
	ServiceRating   *int
	AmbianceRating  *int
	ValueRating     *int
	VisitDate       *time.Time

	IsVerifiedPurchase bool

	// Count of helpful votes, written only by the vote recount.
	HelpfulCount int64

	User          User          `gorm:"foreignKey:UserID"`
	Establishment Establishment `gorm:"foreignKey:EstablishmentID"`
	Dish          *Dish         `gorm:"foreignKey:DishID"`
}

type ReviewVote struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex:idx_vote_unique"`
	ReviewID  uint `gorm:"uniqueIndex:idx_vote_unique"`
	IsHelpful bool
}

// ReviewListing is one review joined with its reviewer, dish and
// establishment names for display.
type ReviewListing struct {
	ID              uint
	UserID          uint
	EstablishmentID uint
	DishID          *uint
	Rating          int
	Title           string
	Comment         string
	FoodRating      *int
	ServiceRating   *int
	AmbianceRating  *int
	ValueRating     *int
	VisitDate       *time.Time
	HelpfulCount    int64
	CreatedAt       time.Time
	ReviewerName    string
	DishName        *string
	BusinessName    string
}

// RatingAggregate is the AVG/COUNT pair scanned from the reviews table.
type RatingAggregate struct {
	AverageRating float64
	TotalReviews  int64
}
