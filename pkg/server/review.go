package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"saborlocal.pe/SaborLocal/pkg/auth"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
)

const (
	minRating = 1
	maxRating = 5
)

type ReviewServer struct {
	reviews repository.ReviewRepository
	logger  *zap.Logger
}

func NewReviewServer(reviews repository.ReviewRepository, logger *zap.Logger) *ReviewServer {
	return &ReviewServer{reviews: reviews, logger: logger}
}

type CreateReviewRequest struct {
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
}

// CreateReview persists the review and then recomputes the denormalized
// ratings of the dish (when targeted) and the establishment. The recompute
// runs after the insert; its failure leaves the counts stale until the next
// write to the same target, never the review unsaved.
func (s *ReviewServer) CreateReview(ctx context.Context, user *model.User, req CreateReviewRequest) (*model.Review, error) {
	if user == nil || user.UserType != model.UserTypeConsumer {
		return nil, authError("Solo los consumidores pueden escribir reseñas")
	}

	if req.Rating < minRating || req.Rating > maxRating {
		return nil, validationError("La calificación debe ser entre 1 y 5 estrellas")
	}

	if req.EstablishmentID == 0 {
		return nil, validationError("ID del establecimiento es requerido")
	}

	for _, subRating := range []*int{req.FoodRating, req.ServiceRating, req.AmbianceRating, req.ValueRating} {
		if subRating != nil && (*subRating < minRating || *subRating > maxRating) {
			return nil, validationError("Las calificaciones por categoría deben ser entre 1 y 5 estrellas")
		}
	}

	exists, err := s.reviews.HasReview(ctx, user.ID, req.EstablishmentID, req.DishID)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, duplicateError("Ya has reseñado este plato")
	}

	review := model.Review{
		UserID:          user.ID,
		EstablishmentID: req.EstablishmentID,
		DishID:          req.DishID,
		Rating:          req.Rating,
		Title:           req.Title,
		Comment:         req.Comment,
		FoodRating:      req.FoodRating,
		ServiceRating:   req.ServiceRating,
		AmbianceRating:  req.AmbianceRating,
		ValueRating:     req.ValueRating,
		VisitDate:       req.VisitDate,
	}

	created, err := s.reviews.AddReview(ctx, review)
	if err != nil {
		return nil, err
	}

	var recomputeErr error

	if req.DishID != nil {
		recomputeErr = multierr.Append(recomputeErr, s.reviews.RecomputeDishRating(ctx, *req.DishID))
	}

	recomputeErr = multierr.Append(recomputeErr, s.reviews.RecomputeEstablishmentRating(ctx, req.EstablishmentID))

	if recomputeErr != nil {
		s.logger.Error("error recomputing ratings after review", zap.Uint("review_id", created.ID), zap.Error(recomputeErr))
	}

	return created, nil
}

// VoteReview upserts the caller's helpful/unhelpful vote and returns the
// review's recounted helpful total.
func (s *ReviewServer) VoteReview(ctx context.Context, user *model.User, reviewID uint, isHelpful bool) (int64, error) {
	if user == nil {
		return 0, authError("Debes iniciar sesión para votar")
	}

	if _, err := s.reviews.GetReviewByID(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return 0, notFoundError("Reseña no encontrada")
		}

		return 0, err
	}

	vote := model.ReviewVote{
		UserID:    user.ID,
		ReviewID:  reviewID,
		IsHelpful: isHelpful,
	}

	if err := s.reviews.UpsertVote(ctx, vote); err != nil {
		return 0, err
	}

	return s.reviews.RecountHelpfulVotes(ctx, reviewID)
}

func (s *ReviewServer) HandleCreate(c *gin.Context) {
	req := CreateReviewRequest{
		Rating:         queryIntFromForm(c, "rating"),
		Title:          c.PostForm("title"),
		Comment:        c.PostForm("comment"),
		FoodRating:     formInt(c, "foodRating"),
		ServiceRating:  formInt(c, "serviceRating"),
		AmbianceRating: formInt(c, "ambianceRating"),
		ValueRating:    formInt(c, "valueRating"),
	}

	if id := formInt(c, "establishmentId"); id != nil && *id > 0 {
		req.EstablishmentID = uint(*id)
	}

	if id := formInt(c, "dishId"); id != nil && *id > 0 {
		dishID := uint(*id)
		req.DishID = &dishID
	}

	if visitDate := c.PostForm("visitDate"); visitDate != "" {
		if parsed, err := time.Parse("2006-01-02", visitDate); err == nil {
			req.VisitDate = &parsed
		}
	}

	review, err := s.CreateReview(c.Request.Context(), auth.CurrentUser(c), req)
	if err != nil {
		respondError(c, s.logger, err, "Error al crear la reseña")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reviewId": review.ID})
}

func (s *ReviewServer) HandleVote(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	helpfulCount, err := s.VoteReview(c.Request.Context(), auth.CurrentUser(c), reviewID, c.PostForm("isHelpful") == "true")
	if err != nil {
		respondError(c, s.logger, err, "Error al votar la reseña")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "helpfulCount": helpfulCount})
}

func (s *ReviewServer) HandleListByDish(c *gin.Context) {
	dishID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	listings, err := s.reviews.GetReviewsByDish(c.Request.Context(), dishID)
	if err != nil {
		respondError(c, s.logger, err, "Error al obtener las reseñas")

		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviewPayloads(listings)})
}

func (s *ReviewServer) HandleListByEstablishment(c *gin.Context) {
	establishmentID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	listings, err := s.reviews.GetReviewsByEstablishment(c.Request.Context(), establishmentID)
	if err != nil {
		respondError(c, s.logger, err, "Error al obtener las reseñas")

		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviewPayloads(listings)})
}

func queryIntFromForm(c *gin.Context, key string) int {
	if value := formInt(c, key); value != nil {
		return *value
	}

	return 0
}

func reviewPayloads(listings []*model.ReviewListing) []gin.H {
	payloads := make([]gin.H, 0, len(listings))
	for _, listing := range listings {
		payloads = append(payloads, gin.H{
			"id":               listing.ID,
			"user_id":          listing.UserID,
			"establishment_id": listing.EstablishmentID,
			"dish_id":          listing.DishID,
			"rating":           listing.Rating,
			"title":            listing.Title,
			"comment":          listing.Comment,
			"food_rating":      listing.FoodRating,
			"service_rating":   listing.ServiceRating,
			"ambiance_rating":  listing.AmbianceRating,
			"value_rating":     listing.ValueRating,
			"visit_date":       listing.VisitDate,
			"helpful_count":    listing.HelpfulCount,
			"created_at":       listing.CreatedAt,
			"reviewer_name":    listing.ReviewerName,
			"dish_name":        listing.DishName,
			"business_name":    listing.BusinessName,
		})
	}

	return payloads
}
