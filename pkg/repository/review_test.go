package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
)

type ReviewTestSuite struct {
	RepositorySuite
}

func TestReviewTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewTestSuite))
}

func (suite *ReviewTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *ReviewTestSuite) TestAddReview_AddsReview() {
	review := model.Review{
		UserID:          1,
		EstablishmentID: 2,
		DishID:          pointy.Uint(3),
		Rating:          5,
		Title:           "Excelente",
		Comment:         "El mejor lomo saltado de Lima",
		FoodRating:      pointy.Int(5),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "reviews" ("created_at","updated_at","deleted_at","user_id","establishment_id","dish_id","rating","title","comment","food_rating","service_rating","ambiance_rating","value_rating","visit_date","is_verified_purchase","helpful_count") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, 1, 2, 3, 5, "Excelente", "El mejor lomo saltado de Lima", 5, nil, nil, nil, nil, false, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(10)))
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddReview(context.Background(), review)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(uint(10), result.ID)
	suite.Equal(5, result.Rating)
}

func (suite *ReviewTestSuite) TestAddReview_ReturnsError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery("^INSERT INTO (.+)").WillReturnError(gorm.ErrInvalidData)
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddReview(context.Background(), model.Review{UserID: 1, EstablishmentID: 2})

	suite.Nil(result)
	suite.EqualError(err, "unsupported data")
}

func (suite *ReviewTestSuite) TestHasReview_MatchesDish() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "reviews" WHERE (user_id = $1 AND establishment_id = $2) AND dish_id = $3 AND "reviews"."deleted_at" IS NULL`)).
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := suite.repository.HasReview(context.Background(), 1, 2, pointy.Uint(3))
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *ReviewTestSuite) TestHasReview_NilDishIsItsOwnTarget() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "reviews" WHERE (user_id = $1 AND establishment_id = $2) AND dish_id IS NULL AND "reviews"."deleted_at" IS NULL`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := suite.repository.HasReview(context.Background(), 1, 2, nil)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ReviewTestSuite) TestGetReviewByID_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews" WHERE "reviews"."id" = $1 AND "reviews"."deleted_at" IS NULL ORDER BY "reviews"."id" LIMIT $2`)).
		WithArgs(999, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	review, err := suite.repository.GetReviewByID(context.Background(), 999)

	suite.Nil(review)
	suite.ErrorIs(err, repository.ErrReviewNotFound)
}

func (suite *ReviewTestSuite) TestGetReviewsByDish_GetsListings() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT r.id, r.user_id, r.establishment_id, r.dish_id, r.rating, r.title, r.comment, r.food_rating, r.service_rating, r.ambiance_rating, r.value_rating, r.visit_date, r.helpful_count, r.created_at, u.name as reviewer_name, d.name as dish_name, e.business_name FROM reviews r INNER JOIN users u ON u.id = r.user_id LEFT JOIN dishes d ON d.id = r.dish_id INNER JOIN establishments e ON e.id = r.establishment_id WHERE r.deleted_at IS NULL AND r.dish_id = $1 ORDER BY r.created_at DESC`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating", "reviewer_name", "dish_name", "business_name", "helpful_count"}).
			AddRow(10, 5, "María", "Lomo Saltado", "El Rincón Criollo", 4).
			AddRow(11, 4, "José", "Lomo Saltado", "El Rincón Criollo", 0))

	listings, err := suite.repository.GetReviewsByDish(context.Background(), 3)
	suite.Require().NoError(err)
	suite.Len(listings, 2)
	suite.Equal("María", listings[0].ReviewerName)
	suite.Equal(int64(4), listings[0].HelpfulCount)
	suite.Equal("El Rincón Criollo", listings[1].BusinessName)
}

func (suite *ReviewTestSuite) TestGetReviewsByEstablishment_GetsListings() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT r.id, r.user_id, r.establishment_id, r.dish_id, r.rating, r.title, r.comment, r.food_rating, r.service_rating, r.ambiance_rating, r.value_rating, r.visit_date, r.helpful_count, r.created_at, u.name as reviewer_name, d.name as dish_name, e.business_name FROM reviews r INNER JOIN users u ON u.id = r.user_id LEFT JOIN dishes d ON d.id = r.dish_id INNER JOIN establishments e ON e.id = r.establishment_id WHERE r.deleted_at IS NULL AND r.establishment_id = $1 ORDER BY r.created_at DESC`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating", "reviewer_name", "business_name"}).
			AddRow(10, 5, "María", "El Rincón Criollo"))

	listings, err := suite.repository.GetReviewsByEstablishment(context.Background(), 2)
	suite.Require().NoError(err)
	suite.Len(listings, 1)
	suite.Equal(uint(10), listings[0].ID)
}

func (suite *ReviewTestSuite) TestUpsertVote_InsertsOrOverwrites() {
	vote := model.ReviewVote{UserID: 1, ReviewID: 10, IsHelpful: true}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "review_votes" ("created_at","updated_at","deleted_at","user_id","review_id","is_helpful") VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT ("user_id","review_id") DO UPDATE SET "is_helpful"="excluded"."is_helpful","updated_at"="excluded"."updated_at" RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, 1, 10, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	err := suite.repository.UpsertVote(context.Background(), vote)
	suite.NoError(err)
}

func (suite *ReviewTestSuite) TestRecountHelpfulVotes_CountsOnlyHelpful() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "review_votes" WHERE (review_id = $1 AND is_helpful = $2) AND "review_votes"."deleted_at" IS NULL`)).
		WithArgs(10, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "reviews" SET "helpful_count"=$1,"updated_at"=$2 WHERE id = $3 AND "reviews"."deleted_at" IS NULL`)).
		WithArgs(7, sqlmock.AnyArg(), 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	count, err := suite.repository.RecountHelpfulVotes(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Equal(int64(7), count)
}

func (suite *ReviewTestSuite) TestRecomputeDishRating_FullRecompute() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT coalesce(avg(rating), 0) as average_rating, count(*) as total_reviews FROM "reviews" WHERE dish_id = $1 AND deleted_at IS NULL`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "total_reviews"}).AddRow(4.5, 12))

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "dishes" SET "average_rating"=$1,"total_reviews"=$2,"updated_at"=$3 WHERE id = $4 AND "dishes"."deleted_at" IS NULL`)).
		WithArgs(4.5, int64(12), sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.RecomputeDishRating(context.Background(), 3)
	suite.NoError(err)
}

func (suite *ReviewTestSuite) TestRecomputeDishRating_ZeroReviewsResetsAggregates() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT coalesce(avg(rating), 0) as average_rating, count(*) as total_reviews FROM "reviews" WHERE dish_id = $1 AND deleted_at IS NULL`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "total_reviews"}).AddRow(0, 0))

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "dishes" SET "average_rating"=$1,"total_reviews"=$2,"updated_at"=$3 WHERE id = $4 AND "dishes"."deleted_at" IS NULL`)).
		WithArgs(0.0, int64(0), sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.RecomputeDishRating(context.Background(), 3)
	suite.NoError(err)
}

func (suite *ReviewTestSuite) TestRecomputeEstablishmentRating_FullRecompute() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT coalesce(avg(rating), 0) as average_rating, count(*) as total_reviews FROM "reviews" WHERE establishment_id = $1 AND deleted_at IS NULL`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "total_reviews"}).AddRow(4.2, 30))

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "establishments" SET "average_rating"=$1,"total_reviews"=$2,"updated_at"=$3 WHERE id = $4 AND "establishments"."deleted_at" IS NULL`)).
		WithArgs(4.2, int64(30), sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.RecomputeEstablishmentRating(context.Background(), 2)
	suite.NoError(err)
}

func (suite *ReviewTestSuite) TestRecomputeEstablishmentRating_AggregateError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrInvalidDB)

	err := suite.repository.RecomputeEstablishmentRating(context.Background(), 2)

	suite.EqualError(err, "invalid db")
}
