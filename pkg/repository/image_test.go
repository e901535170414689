package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
)

type ImageTestSuite struct {
	RepositorySuite
}

func TestImageTestSuite(t *testing.T) {
	suite.Run(t, new(ImageTestSuite))
}

func (suite *ImageTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *ImageTestSuite) TestAddImage_AddsImage() {
	image := model.Image{
		URL:        "/uploads/dish/3f2c.jpg",
		AltText:    "Ceviche clásico",
		UploadedBy: 9,
		EntityType: model.EntityDish,
		EntityID:   7,
		IsPrimary:  true,
		FileSize:   pointy.Int64(204800),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "images" ("created_at","updated_at","deleted_at","url","alt_text","uploaded_by","entity_type","entity_id","is_primary","file_size") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "/uploads/dish/3f2c.jpg", "Ceviche clásico", 9, "dish", 7, true, int64(204800)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(31)))
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddImage(context.Background(), image)
	suite.Require().NoError(err)
	suite.Equal(uint(31), result.ID)
}

func (suite *ImageTestSuite) TestGetImagesByEntity_OrdersPrimaryFirst() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE (entity_type = $1 AND entity_id = $2) AND "images"."deleted_at" IS NULL ORDER BY is_primary DESC, created_at DESC`)).
		WithArgs("dish", 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "is_primary"}).
			AddRow(31, "/uploads/dish/3f2c.jpg", true).
			AddRow(28, "/uploads/dish/91ab.jpg", false))

	images, err := suite.repository.GetImagesByEntity(context.Background(), model.EntityDish, 7)
	suite.Require().NoError(err)
	suite.Require().Len(images, 2)
	suite.True(images[0].IsPrimary)
	suite.Equal(uint(28), images[1].ID)
}

func (suite *ImageTestSuite) TestGetImageForUploader_GetsImage() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE (id = $1 AND uploaded_by = $2) AND "images"."deleted_at" IS NULL ORDER BY "images"."id" LIMIT $3`)).
		WithArgs(31, 9, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uploaded_by"}).AddRow(31, 9))

	image, err := suite.repository.GetImageForUploader(context.Background(), 31, 9)
	suite.Require().NoError(err)
	suite.Equal(uint(31), image.ID)
}

func (suite *ImageTestSuite) TestGetImageForUploader_NotUploaderReturnsNotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE (id = $1 AND uploaded_by = $2) AND "images"."deleted_at" IS NULL ORDER BY "images"."id" LIMIT $3`)).
		WithArgs(31, 6, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	image, err := suite.repository.GetImageForUploader(context.Background(), 31, 6)

	suite.Nil(image)
	suite.ErrorIs(err, repository.ErrImageNotFound)
}

func (suite *ImageTestSuite) TestDeleteImage_SoftDeletes() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "images" SET "deleted_at"=$1 WHERE "images"."id" = $2 AND "images"."deleted_at" IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 31).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.DeleteImage(context.Background(), 31))
}

func (suite *ImageTestSuite) TestClearPrimary_ClearsScope() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "images" SET "is_primary"=$1,"updated_at"=$2 WHERE (entity_type = $3 AND entity_id = $4) AND "images"."deleted_at" IS NULL`)).
		WithArgs(false, sqlmock.AnyArg(), "dish", 7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.ClearPrimary(context.Background(), model.EntityDish, 7))
}

func (suite *ImageTestSuite) TestSetPrimaryImage_SetsPrimaryInOneTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "images" SET "is_primary"=$1,"updated_at"=$2 WHERE (entity_type = $3 AND entity_id = $4) AND "images"."deleted_at" IS NULL`)).
		WithArgs(false, sqlmock.AnyArg(), "dish", 7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "images" SET "is_primary"=$1,"updated_at"=$2 WHERE id = $3 AND "images"."deleted_at" IS NULL`)).
		WithArgs(true, sqlmock.AnyArg(), 31).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.SetPrimaryImage(context.Background(), model.EntityDish, 7, 31))
}

func (suite *ImageTestSuite) TestSetPrimaryImage_UnknownImageRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "images" SET "is_primary"=$1,"updated_at"=$2 WHERE (entity_type = $3 AND entity_id = $4) AND "images"."deleted_at" IS NULL`)).
		WithArgs(false, sqlmock.AnyArg(), "dish", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "images" SET "is_primary"=$1,"updated_at"=$2 WHERE id = $3 AND "images"."deleted_at" IS NULL`)).
		WithArgs(true, sqlmock.AnyArg(), 999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	err := suite.repository.SetPrimaryImage(context.Background(), model.EntityDish, 7, 999)

	suite.ErrorIs(err, repository.ErrImageNotFound)
}
