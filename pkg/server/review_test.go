package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"saborlocal.pe/SaborLocal/mocks"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
	"saborlocal.pe/SaborLocal/pkg/server"
)

type ReviewTestSuite struct {
	suite.Suite
	reviewRepo   *mocks.ReviewRepository
	service      *server.ReviewServer
	observedLogs *observer.ObservedLogs
}

func TestReviewTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewTestSuite))
}

func (suite *ReviewTestSuite) SetupTest() {
	suite.reviewRepo = mocks.NewReviewRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewReviewServer(suite.reviewRepo, zap.New(observedZapCore))
}

func consumer() *model.User {
	return &model.User{Model: gorm.Model{ID: 9}, Name: "María", UserType: model.UserTypeConsumer}
}

func (suite *ReviewTestSuite) TestCreateReview_RequiresConsumer() {
	owner := &model.User{Model: gorm.Model{ID: 4}, UserType: model.UserTypeEstablishment}

	review, err := suite.service.CreateReview(context.Background(), owner, server.CreateReviewRequest{EstablishmentID: 2, Rating: 5})
	suite.Require().ErrorIs(err, server.ErrAuth)
	suite.Require().ErrorContains(err, "Solo los consumidores pueden escribir reseñas")
	suite.Nil(review)
}

func (suite *ReviewTestSuite) TestCreateReview_RequiresAuthenticatedUser() {
	_, err := suite.service.CreateReview(context.Background(), nil, server.CreateReviewRequest{EstablishmentID: 2, Rating: 5})
	suite.Require().ErrorIs(err, server.ErrAuth)
}

func (suite *ReviewTestSuite) TestCreateReview_RejectsOutOfRangeRating() {
	for _, rating := range []int{0, 6, -1} {
		_, err := suite.service.CreateReview(context.Background(), consumer(), server.CreateReviewRequest{EstablishmentID: 2, Rating: rating})
		suite.Require().ErrorIs(err, server.ErrValidation)
		suite.Require().ErrorContains(err, "La calificación debe ser entre 1 y 5 estrellas")
	}
}

func (suite *ReviewTestSuite) TestCreateReview_RequiresEstablishment() {
	_, err := suite.service.CreateReview(context.Background(), consumer(), server.CreateReviewRequest{Rating: 4})
	suite.Require().ErrorIs(err, server.ErrValidation)
	suite.Require().ErrorContains(err, "ID del establecimiento es requerido")
}

func (suite *ReviewTestSuite) TestCreateReview_RejectsOutOfRangeSubRating() {
	request := server.CreateReviewRequest{
		EstablishmentID: 2,
		Rating:          4,
		ServiceRating:   pointy.Int(7),
	}

	_, err := suite.service.CreateReview(context.Background(), consumer(), request)
	suite.Require().ErrorIs(err, server.ErrValidation)
	suite.Require().ErrorContains(err, "Las calificaciones por categoría deben ser entre 1 y 5 estrellas")
}

func (suite *ReviewTestSuite) TestCreateReview_RejectsSecondReviewOfSameDish() {
	ctx := context.Background()
	dishID := uint(7)

	suite.reviewRepo.EXPECT().HasReview(ctx, uint(9), uint(2), &dishID).Return(true, nil)

	review, err := suite.service.CreateReview(ctx, consumer(), server.CreateReviewRequest{EstablishmentID: 2, DishID: &dishID, Rating: 4})
	suite.Require().ErrorIs(err, server.ErrDuplicate)
	suite.Require().ErrorContains(err, "Ya has reseñado este plato")
	suite.Nil(review)
}

func (suite *ReviewTestSuite) TestCreateReview_CreatesAndRecomputesBothTargets() {
	ctx := context.Background()
	dishID := uint(7)
	request := server.CreateReviewRequest{
		EstablishmentID: 2,
		DishID:          &dishID,
		Rating:          5,
		Title:           "Excelente",
		Comment:         "El mejor ceviche de Lima",
		FoodRating:      pointy.Int(5),
	}

	suite.reviewRepo.EXPECT().HasReview(ctx, uint(9), uint(2), &dishID).Return(false, nil)
	suite.reviewRepo.EXPECT().AddReview(ctx, mock.MatchedBy(func(review model.Review) bool {
		return review.UserID == 9 && review.EstablishmentID == 2 &&
			review.DishID != nil && *review.DishID == 7 &&
			review.Rating == 5 && review.Title == "Excelente"
	})).Return(&model.Review{Model: gorm.Model{ID: 21}, Rating: 5}, nil)
	suite.reviewRepo.EXPECT().RecomputeDishRating(ctx, uint(7)).Return(nil)
	suite.reviewRepo.EXPECT().RecomputeEstablishmentRating(ctx, uint(2)).Return(nil)

	review, err := suite.service.CreateReview(ctx, consumer(), request)
	suite.Require().NoError(err)
	suite.Equal(uint(21), review.ID)
	suite.Equal(0, suite.observedLogs.Len())
}

func (suite *ReviewTestSuite) TestCreateReview_EstablishmentOnlySkipsDishRecompute() {
	ctx := context.Background()

	suite.reviewRepo.EXPECT().HasReview(ctx, uint(9), uint(2), (*uint)(nil)).Return(false, nil)
	suite.reviewRepo.EXPECT().AddReview(ctx, mock.Anything).Return(&model.Review{Model: gorm.Model{ID: 22}}, nil)
	suite.reviewRepo.EXPECT().RecomputeEstablishmentRating(ctx, uint(2)).Return(nil)

	review, err := suite.service.CreateReview(ctx, consumer(), server.CreateReviewRequest{EstablishmentID: 2, Rating: 3})
	suite.Require().NoError(err)
	suite.Equal(uint(22), review.ID)
}

func (suite *ReviewTestSuite) TestCreateReview_RecomputeFailureIsLoggedNotSurfaced() {
	ctx := context.Background()
	dishID := uint(7)

	suite.reviewRepo.EXPECT().HasReview(ctx, uint(9), uint(2), &dishID).Return(false, nil)
	suite.reviewRepo.EXPECT().AddReview(ctx, mock.Anything).Return(&model.Review{Model: gorm.Model{ID: 23}}, nil)
	suite.reviewRepo.EXPECT().RecomputeDishRating(ctx, uint(7)).Return(gorm.ErrInvalidDB)
	suite.reviewRepo.EXPECT().RecomputeEstablishmentRating(ctx, uint(2)).Return(nil)

	review, err := suite.service.CreateReview(ctx, consumer(), server.CreateReviewRequest{EstablishmentID: 2, DishID: &dishID, Rating: 4})
	suite.Require().NoError(err)
	suite.Equal(uint(23), review.ID)

	suite.Require().Equal(1, suite.observedLogs.Len())
	suite.Equal("error recomputing ratings after review", suite.observedLogs.All()[0].Message)
}

func (suite *ReviewTestSuite) TestVoteReview_RequiresUser() {
	_, err := suite.service.VoteReview(context.Background(), nil, 21, true)
	suite.Require().ErrorIs(err, server.ErrAuth)
	suite.Require().ErrorContains(err, "Debes iniciar sesión para votar")
}

func (suite *ReviewTestSuite) TestVoteReview_UnknownReview() {
	ctx := context.Background()

	suite.reviewRepo.EXPECT().GetReviewByID(ctx, uint(999)).Return(nil, repository.ErrReviewNotFound)

	_, err := suite.service.VoteReview(ctx, consumer(), 999, true)
	suite.Require().ErrorIs(err, server.ErrNotFound)
	suite.Require().ErrorContains(err, "Reseña no encontrada")
}

func (suite *ReviewTestSuite) TestVoteReview_UpsertsAndRecounts() {
	ctx := context.Background()

	suite.reviewRepo.EXPECT().GetReviewByID(ctx, uint(21)).Return(&model.Review{Model: gorm.Model{ID: 21}}, nil)
	suite.reviewRepo.EXPECT().UpsertVote(ctx, mock.MatchedBy(func(vote model.ReviewVote) bool {
		return vote.UserID == 9 && vote.ReviewID == 21 && vote.IsHelpful
	})).Return(nil)
	suite.reviewRepo.EXPECT().RecountHelpfulVotes(ctx, uint(21)).Return(3, nil)

	helpfulCount, err := suite.service.VoteReview(ctx, consumer(), 21, true)
	suite.Require().NoError(err)
	suite.Equal(int64(3), helpfulCount)
}

func (suite *ReviewTestSuite) TestVoteReview_UnhelpfulVoteStillCounted() {
	ctx := context.Background()

	suite.reviewRepo.EXPECT().GetReviewByID(ctx, uint(21)).Return(&model.Review{Model: gorm.Model{ID: 21}}, nil)
	suite.reviewRepo.EXPECT().UpsertVote(ctx, mock.MatchedBy(func(vote model.ReviewVote) bool {
		return !vote.IsHelpful
	})).Return(nil)
	suite.reviewRepo.EXPECT().RecountHelpfulVotes(ctx, uint(21)).Return(0, nil)

	helpfulCount, err := suite.service.VoteReview(ctx, consumer(), 21, false)
	suite.Require().NoError(err)
	suite.Equal(int64(0), helpfulCount)
}
