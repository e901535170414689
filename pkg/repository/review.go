package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"saborlocal.pe/SaborLocal/pkg/model"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	AddReview(ctx context.Context, review model.Review) (*model.Review, error)
	HasReview(ctx context.Context, userID uint, establishmentID uint, dishID *uint) (bool, error)
	GetReviewByID(ctx context.Context, reviewID uint) (*model.Review, error)
	GetReviewsByDish(ctx context.Context, dishID uint) ([]*model.ReviewListing, error)
	GetReviewsByEstablishment(ctx context.Context, establishmentID uint) ([]*model.ReviewListing, error)
	UpsertVote(ctx context.Context, vote model.ReviewVote) error
	RecountHelpfulVotes(ctx context.Context, reviewID uint) (int64, error)
	RecomputeDishRating(ctx context.Context, dishID uint) error
	RecomputeEstablishmentRating(ctx context.Context, establishmentID uint) error
}

const reviewListingColumns = "r.id, r.user_id, r.establishment_id, r.dish_id, r.rating, r.title, r.comment, " +
	"r.food_rating, r.service_rating, r.ambiance_rating, r.value_rating, r.visit_date, " +
	"r.helpful_count, r.created_at, u.name as reviewer_name, d.name as dish_name, e.business_name"

func (r *Repository) AddReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if result := r.DB.WithContext(ctx).Create(&review); result.Error != nil {
		return nil, result.Error
	}

	return &review, nil
}

// HasReview reports whether a review already exists for the exact
// (user, establishment, dish) tuple. A nil dish is its own target.
func (r *Repository) HasReview(ctx context.Context, userID uint, establishmentID uint, dishID *uint) (bool, error) {
	var count int64

	query := r.DB.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ? AND establishment_id = ?", userID, establishmentID)

	if dishID == nil {
		query = query.Where("dish_id IS NULL")
	} else {
		query = query.Where("dish_id = ?", *dishID)
	}

	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) GetReviewByID(ctx context.Context, reviewID uint) (*model.Review, error) {
	var review model.Review

	result := r.DB.WithContext(ctx).First(&review, reviewID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}

		return nil, result.Error
	}

	return &review, nil
}

func (r *Repository) reviewListingQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("reviews r").
		Select(reviewListingColumns).
		Joins("INNER JOIN users u ON u.id = r.user_id").
		Joins("LEFT JOIN dishes d ON d.id = r.dish_id").
		Joins("INNER JOIN establishments e ON e.id = r.establishment_id").
		Where("r.deleted_at IS NULL").
		Order("r.created_at DESC")
}

func (r *Repository) GetReviewsByDish(ctx context.Context, dishID uint) ([]*model.ReviewListing, error) {
	var listings []*model.ReviewListing

	result := r.reviewListingQuery(ctx).Where("r.dish_id = ?", dishID).Scan(&listings)
	if result.Error != nil {
		return nil, result.Error
	}

	return listings, nil
}

func (r *Repository) GetReviewsByEstablishment(ctx context.Context, establishmentID uint) ([]*model.ReviewListing, error) {
	var listings []*model.ReviewListing

	result := r.reviewListingQuery(ctx).Where("r.establishment_id = ?", establishmentID).Scan(&listings)
	if result.Error != nil {
		return nil, result.Error
	}

	return listings, nil
}

// UpsertVote inserts the vote or, when the voter already voted on this
// review, overwrites the existing row's flag.
func (r *Repository) UpsertVote(ctx context.Context, vote model.ReviewVote) error {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "review_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_helpful", "updated_at"}),
	}).Create(&vote)

	return result.Error
}

// RecountHelpfulVotes overwrites the review's helpful_count with the number
// of helpful votes. Unhelpful votes are stored but never counted.
func (r *Repository) RecountHelpfulVotes(ctx context.Context, reviewID uint) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.ReviewVote{}).
		Where("review_id = ? AND is_helpful = ?", reviewID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	result = r.DB.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", reviewID).
		Update("helpful_count", count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (r *Repository) RecomputeDishRating(ctx context.Context, dishID uint) error {
	aggregate, err := r.ratingAggregate(ctx, "dish_id", dishID)
	if err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Model(&model.Dish{}).
		Where("id = ?", dishID).
		Updates(map[string]interface{}{
			"average_rating": aggregate.AverageRating,
			"total_reviews":  aggregate.TotalReviews,
		})

	return result.Error
}

func (r *Repository) RecomputeEstablishmentRating(ctx context.Context, establishmentID uint) error {
	aggregate, err := r.ratingAggregate(ctx, "establishment_id", establishmentID)
	if err != nil {
		return err
	}

	result := r.DB.WithContext(ctx).Model(&model.Establishment{}).
		Where("id = ?", establishmentID).
		Updates(map[string]interface{}{
			"average_rating": aggregate.AverageRating,
			"total_reviews":  aggregate.TotalReviews,
		})

	return result.Error
}

// ratingAggregate runs the full AVG/COUNT scan over all reviews for the
// target. Idempotent, and the sole source of the denormalized pair.
func (r *Repository) ratingAggregate(ctx context.Context, column string, id uint) (*model.RatingAggregate, error) {
	var aggregate model.RatingAggregate

	result := r.DB.WithContext(ctx).Table("reviews").
		Select("coalesce(avg(rating), 0) as average_rating, count(*) as total_reviews").
		Where(column+" = ?", id).
		Where("deleted_at IS NULL").
		Scan(&aggregate)
	if result.Error != nil {
		return nil, result.Error
	}

	return &aggregate, nil
}
