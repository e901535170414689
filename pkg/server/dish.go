package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"saborlocal.pe/SaborLocal/pkg/auth"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
)

type DishServer struct {
	dishes repository.DishRepository
	users  repository.UserRepository
	images repository.ImageRepository
	logger *zap.Logger
}

func NewDishServer(dishes repository.DishRepository, users repository.UserRepository, images repository.ImageRepository, logger *zap.Logger) *DishServer {
	return &DishServer{dishes: dishes, users: users, images: images, logger: logger}
}

type DishRequest struct {
	Name            string
	Description     string
	Price           float64
	CategoryID      uint
	Ingredients     string
	Allergens       string
	IsVegetarian    bool
	IsVegan         bool
	IsGlutenFree    bool
	IsAvailable     bool
	Calories        *int
	PrepTimeMinutes *int
	SpiceLevel      *int
}

func (d *DishServer) ListDishes(ctx context.Context, filter model.DishFilter) ([]*model.DishListing, error) {
	listings, err := d.dishes.FindDishes(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, listing := range listings {
		fillPlaceholderImage(listing)
	}

	return listings, nil
}

func (d *DishServer) GetDish(ctx context.Context, dishID uint) (*model.DishListing, error) {
	listing, err := d.dishes.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, notFoundError("Plato no encontrado")
		}

		return nil, err
	}

	fillPlaceholderImage(listing)

	return listing, nil
}

// CreateDish adds a dish to the caller's establishment. A placeholder
// primary image row is created alongside it.
func (d *DishServer) CreateDish(ctx context.Context, user *model.User, req DishRequest) (*model.Dish, error) {
	if user == nil || user.UserType != model.UserTypeEstablishment {
		return nil, authError("No tienes permisos para crear platos")
	}

	establishment, err := d.users.GetEstablishmentByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, notFoundError("No se encontró el establecimiento asociado")
		}

		return nil, err
	}

	if req.Name == "" || req.Description == "" || req.Price <= 0 || req.CategoryID == 0 {
		return nil, validationError("Todos los campos obligatorios deben ser completados")
	}

	dish := model.Dish{
		EstablishmentID: establishment.ID,
		CategoryID:      pointy.Uint(req.CategoryID),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Ingredients:     encodeList(req.Ingredients),
		Allergens:       encodeList(req.Allergens),
		IsVegetarian:    req.IsVegetarian,
		IsVegan:         req.IsVegan,
		IsGlutenFree:    req.IsGlutenFree,
		Calories:        req.Calories,
		PrepTimeMinutes: req.PrepTimeMinutes,
		SpiceLevel:      req.SpiceLevel,
		IsAvailable:     true,
	}

	created, err := d.dishes.AddDish(ctx, dish)
	if err != nil {
		return nil, err
	}

	placeholder := model.Image{
		URL:        placeholderImageURL(created.Name),
		AltText:    "Imagen de " + created.Name,
		UploadedBy: user.ID,
		EntityType: model.EntityDish,
		EntityID:   created.ID,
		IsPrimary:  true,
	}

	if _, err := d.images.AddImage(ctx, placeholder); err != nil {
		d.logger.Warn("error creating placeholder image", zap.Uint("dish_id", created.ID), zap.Error(err))
	}

	return created, nil
}

func (d *DishServer) UpdateDish(ctx context.Context, user *model.User, dishID uint, req DishRequest) (*model.Dish, error) {
	if user == nil || user.UserType != model.UserTypeEstablishment {
		return nil, authError("No tienes permisos para editar platos")
	}

	dish, err := d.dishes.GetDishForOwner(ctx, dishID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, authError("No tienes permisos para editar este plato")
		}

		return nil, err
	}

	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.CategoryID = pointy.Uint(req.CategoryID)
	dish.Ingredients = encodeList(req.Ingredients)
	dish.Allergens = encodeList(req.Allergens)
	dish.IsVegetarian = req.IsVegetarian
	dish.IsVegan = req.IsVegan
	dish.IsGlutenFree = req.IsGlutenFree
	dish.IsAvailable = req.IsAvailable
	dish.Calories = req.Calories
	dish.PrepTimeMinutes = req.PrepTimeMinutes
	dish.SpiceLevel = req.SpiceLevel

	return d.dishes.UpdateDish(ctx, dish)
}

func (d *DishServer) DeleteDish(ctx context.Context, user *model.User, dishID uint) error {
	if user == nil || user.UserType != model.UserTypeEstablishment {
		return authError("No tienes permisos para eliminar platos")
	}

	if _, err := d.dishes.GetDishForOwner(ctx, dishID, user.ID); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return authError("No tienes permisos para eliminar este plato")
		}

		return err
	}

	return d.dishes.DeleteDish(ctx, dishID)
}

func (d *DishServer) ListOwnDishes(ctx context.Context, user *model.User) ([]*model.DishListing, error) {
	if user == nil || user.UserType != model.UserTypeEstablishment {
		return nil, authError("No tienes permisos para ver este menú")
	}

	listings, err := d.dishes.GetDishesForOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	for _, listing := range listings {
		fillPlaceholderImage(listing)
	}

	return listings, nil
}

func fillPlaceholderImage(listing *model.DishListing) {
	if listing.PrimaryImageURL == nil {
		listing.PrimaryImageURL = pointy.String(placeholderImageURL(listing.Name))
	}
}

func placeholderImageURL(name string) string {
	return "/placeholder.svg?height=400&width=600&text=" + url.QueryEscape(name)
}

func (d *DishServer) HandleList(c *gin.Context) {
	filter := model.DishFilter{
		Search:       queryString(c, "search"),
		Category:     queryString(c, "category"),
		City:         queryString(c, "city"),
		MinPrice:     queryFloat(c, "minPrice"),
		MaxPrice:     queryFloat(c, "maxPrice"),
		IsVegetarian: c.Query("isVegetarian") == "true",
		IsVegan:      c.Query("isVegan") == "true",
		IsGlutenFree: c.Query("isGlutenFree") == "true",
		SortBy:       c.Query("sortBy"),
		SortOrder:    model.SortOrder(c.Query("sortOrder")),
		Limit:        queryInt(c, "limit"),
		Offset:       queryInt(c, "offset"),
	}

	listings, err := d.ListDishes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, d.logger, err, "Error al obtener los platos")

		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishPayloads(listings)})
}

func (d *DishServer) HandleGet(c *gin.Context) {
	dishID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	listing, err := d.GetDish(c.Request.Context(), dishID)
	if err != nil {
		respondError(c, d.logger, err, "Error al obtener el plato")

		return
	}

	c.JSON(http.StatusOK, gin.H{"dish": dishPayload(listing)})
}

func (d *DishServer) HandleCategories(c *gin.Context) {
	categories, err := d.dishes.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, d.logger, err, "Error al obtener las categorías")

		return
	}

	payloads := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		payloads = append(payloads, gin.H{"id": category.ID, "name": category.Name, "description": category.Description})
	}

	c.JSON(http.StatusOK, gin.H{"categories": payloads})
}

func (d *DishServer) HandleCreate(c *gin.Context) {
	dish, err := d.CreateDish(c.Request.Context(), auth.CurrentUser(c), dishRequestFromForm(c))
	if err != nil {
		respondError(c, d.logger, err, "Error al crear el plato")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "dishId": dish.ID})
}

func (d *DishServer) HandleUpdate(c *gin.Context) {
	dishID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	if _, err := d.UpdateDish(c.Request.Context(), auth.CurrentUser(c), dishID, dishRequestFromForm(c)); err != nil {
		respondError(c, d.logger, err, "Error al actualizar el plato")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (d *DishServer) HandleDelete(c *gin.Context) {
	dishID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	if err := d.DeleteDish(c.Request.Context(), auth.CurrentUser(c), dishID); err != nil {
		respondError(c, d.logger, err, "Error al eliminar el plato")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (d *DishServer) HandleOwnDishes(c *gin.Context) {
	listings, err := d.ListOwnDishes(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, d.logger, err, "Error al obtener los platos")

		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishPayloads(listings)})
}

func dishRequestFromForm(c *gin.Context) DishRequest {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	categoryID, _ := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)

	return DishRequest{
		Name:            c.PostForm("name"),
		Description:     c.PostForm("description"),
		Price:           price,
		CategoryID:      uint(categoryID),
		Ingredients:     c.PostForm("ingredients"),
		Allergens:       c.PostForm("allergens"),
		IsVegetarian:    c.PostForm("isVegetarian") == "true",
		IsVegan:         c.PostForm("isVegan") == "true",
		IsGlutenFree:    c.PostForm("isGlutenFree") == "true",
		IsAvailable:     c.PostForm("isAvailable") == "true",
		Calories:        formInt(c, "calories"),
		PrepTimeMinutes: formInt(c, "prepTime"),
		SpiceLevel:      formInt(c, "spiceLevel"),
	}
}

func dishPayloads(listings []*model.DishListing) []gin.H {
	payloads := make([]gin.H, 0, len(listings))
	for _, listing := range listings {
		payloads = append(payloads, dishPayload(listing))
	}

	return payloads
}

func dishPayload(listing *model.DishListing) gin.H {
	return gin.H{
		"id":                listing.ID,
		"establishment_id":  listing.EstablishmentID,
		"category_id":       listing.CategoryID,
		"name":              listing.Name,
		"description":       listing.Description,
		"price":             listing.Price,
		"currency":          listing.Currency,
		"ingredients":       decodeList(listing.Ingredients),
		"allergens":         decodeList(listing.Allergens),
		"is_vegetarian":     listing.IsVegetarian,
		"is_vegan":          listing.IsVegan,
		"is_gluten_free":    listing.IsGlutenFree,
		"calories":          listing.Calories,
		"prep_time_minutes": listing.PrepTimeMinutes,
		"spice_level":       listing.SpiceLevel,
		"average_rating":    listing.AverageRating,
		"total_reviews":     listing.TotalReviews,
		"is_available":      listing.IsAvailable,
		"business_name":     listing.BusinessName,
		"city":              listing.City,
		"cuisine_type":      listing.CuisineType,
		"category_name":     listing.CategoryName,
		"primary_image_url": listing.PrimaryImageURL,
	}
}
