package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"saborlocal.pe/SaborLocal/pkg/model"
)

var ErrDishNotFound = errors.New("dish not found")

const defaultListLimit = 50

type DishRepository interface {
	AddDish(ctx context.Context, dish model.Dish) (*model.Dish, error)
	UpdateDish(ctx context.Context, dish *model.Dish) (*model.Dish, error)
	DeleteDish(ctx context.Context, dishID uint) error
	GetDishByID(ctx context.Context, dishID uint) (*model.DishListing, error)
	GetDishForOwner(ctx context.Context, dishID uint, userID uint) (*model.Dish, error)
	GetDishesForOwner(ctx context.Context, userID uint) ([]*model.DishListing, error)
	FindDishes(ctx context.Context, filter model.DishFilter) ([]*model.DishListing, error)
	GetCategories(ctx context.Context) ([]*model.DishCategory, error)
}

const dishListingColumns = "d.id, d.establishment_id, d.category_id, d.name, d.description, d.price, d.currency, " +
	"d.ingredients, d.allergens, d.is_vegetarian, d.is_vegan, d.is_gluten_free, " +
	"d.calories, d.prep_time_minutes, d.spice_level, d.average_rating, d.total_reviews, d.is_available, " +
	"e.business_name, e.city, e.cuisine_type, dc.name as category_name, img.url as primary_image_url"

func (r *Repository) dishListingQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("dishes d").
		Select(dishListingColumns).
		Joins("INNER JOIN establishments e ON e.id = d.establishment_id").
		Joins("LEFT JOIN dish_categories dc ON dc.id = d.category_id").
		Joins("LEFT JOIN images img ON img.entity_id = d.id AND img.entity_type = 'dish' AND img.is_primary = true AND img.deleted_at IS NULL").
		Where("d.deleted_at IS NULL")
}

func (r *Repository) AddDish(ctx context.Context, dish model.Dish) (*model.Dish, error) {
	if result := r.DB.WithContext(ctx).Create(&dish); result.Error != nil {
		return nil, result.Error
	}

	return &dish, nil
}

func (r *Repository) UpdateDish(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	if result := r.DB.WithContext(ctx).Save(dish); result.Error != nil {
		return nil, result.Error
	}

	return dish, nil
}

func (r *Repository) DeleteDish(ctx context.Context, dishID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Dish{}, dishID)

	return result.Error
}

func (r *Repository) GetDishByID(ctx context.Context, dishID uint) (*model.DishListing, error) {
	var listing model.DishListing

	result := r.dishListingQuery(ctx).
		Where("d.id = ?", dishID).
		Take(&listing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}

		return nil, result.Error
	}

	return &listing, nil
}

// GetDishForOwner loads a dish only when its owning establishment belongs
// to the given user.
func (r *Repository) GetDishForOwner(ctx context.Context, dishID uint, userID uint) (*model.Dish, error) {
	var dish model.Dish

	result := r.DB.WithContext(ctx).
		Joins("INNER JOIN establishments e ON e.id = dishes.establishment_id").
		Where("dishes.id = ? AND e.user_id = ?", dishID, userID).
		First(&dish)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}

		return nil, result.Error
	}

	return &dish, nil
}

func (r *Repository) GetDishesForOwner(ctx context.Context, userID uint) ([]*model.DishListing, error) {
	var listings []*model.DishListing

	result := r.dishListingQuery(ctx).
		Where("e.user_id = ?", userID).
		Order("d.created_at DESC").
		Scan(&listings)
	if result.Error != nil {
		return nil, result.Error
	}

	return listings, nil
}

func (r *Repository) FindDishes(ctx context.Context, filter model.DishFilter) ([]*model.DishListing, error) {
	var listings []*model.DishListing

	query := r.dishListingQuery(ctx).
		Where("d.is_available = true").
		Where("e.is_active = true")

	updateQueryWithFilter(filter, query)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query = query.Order(orderClause(filter)).Limit(limit)

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if result := query.Scan(&listings); result.Error != nil {
		return nil, result.Error
	}

	return listings, nil
}

func updateQueryWithFilter(filter model.DishFilter, query *gorm.DB) {
	if filter.Search != nil {
		term := "%" + *filter.Search + "%"
		query = query.Where("(d.name ILIKE ? OR d.description ILIKE ? OR e.business_name ILIKE ?)", term, term, term)
	}

	if filter.Category != nil {
		query = query.Where("dc.name = ?", *filter.Category)
	}

	if filter.City != nil {
		query = query.Where("e.city = ?", *filter.City)
	}

	if filter.MinPrice != nil {
		query = query.Where("d.price >= ?", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		query = query.Where("d.price <= ?", *filter.MaxPrice)
	}

	if filter.IsVegetarian {
		query = query.Where("d.is_vegetarian = true")
	}

	if filter.IsVegan {
		query = query.Where("d.is_vegan = true")
	}

	if filter.IsGlutenFree {
		query.Where("d.is_gluten_free = true")
	}
}

// orderClause maps the sort key onto a whitelisted column, defaulting to
// average rating descending.
func orderClause(filter model.DishFilter) string {
	column := "d.average_rating"

	switch filter.SortBy {
	case "price":
		column = "d.price"
	case "name":
		column = "d.name"
	case "rating", "average_rating":
		column = "d.average_rating"
	}

	direction := "DESC"
	if filter.SortOrder == model.SortAscending {
		direction = "ASC"
	}

	return column + " " + direction
}

func (r *Repository) GetCategories(ctx context.Context) ([]*model.DishCategory, error) {
	var categories []*model.DishCategory

	if result := r.DB.WithContext(ctx).Order("name").Find(&categories); result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}
