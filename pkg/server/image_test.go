package server_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"saborlocal.pe/SaborLocal/mocks"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
	"saborlocal.pe/SaborLocal/pkg/server"
	"saborlocal.pe/SaborLocal/pkg/storage"
)

type ImageServerTestSuite struct {
	suite.Suite
	imageRepo    *mocks.ImageRepository
	uploadRoot   string
	service      *server.ImageServer
	observedLogs *observer.ObservedLogs
}

func TestImageServerTestSuite(t *testing.T) {
	suite.Run(t, new(ImageServerTestSuite))
}

func (suite *ImageServerTestSuite) SetupTest() {
	suite.imageRepo = mocks.NewImageRepository(suite.T())
	suite.uploadRoot = suite.T().TempDir()
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	store := storage.NewFileStore(suite.uploadRoot, zap.New(observedZapCore))
	suite.service = server.NewImageServer(suite.imageRepo, store, "/uploads", zap.New(observedZapCore))
}

func uploadRequest() server.UploadRequest {
	return server.UploadRequest{
		FileName:    "ceviche.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg bytes"),
		EntityType:  model.EntityDish,
		EntityID:    7,
		AltText:     "Ceviche clásico",
	}
}

func (suite *ImageServerTestSuite) TestUpload_RequiresUser() {
	_, err := suite.service.Upload(context.Background(), nil, uploadRequest())
	suite.Require().ErrorIs(err, server.ErrAuth)
	suite.Require().ErrorContains(err, "Debes iniciar sesión para subir imágenes")
}

func (suite *ImageServerTestSuite) TestUpload_RequiresEntityAndData() {
	request := uploadRequest()
	request.EntityID = 0

	_, err := suite.service.Upload(context.Background(), consumer(), request)
	suite.Require().ErrorIs(err, server.ErrValidation)
	suite.Require().ErrorContains(err, "Faltan datos requeridos")

	request = uploadRequest()
	request.Data = nil

	_, err = suite.service.Upload(context.Background(), consumer(), request)
	suite.Require().ErrorIs(err, server.ErrValidation)
}

func (suite *ImageServerTestSuite) TestUpload_RejectsUnsupportedType() {
	request := uploadRequest()
	request.ContentType = "image/svg+xml"

	_, err := suite.service.Upload(context.Background(), consumer(), request)
	suite.Require().ErrorIs(err, server.ErrValidation)
	suite.Require().ErrorContains(err, "Tipo de archivo no permitido. Solo se permiten JPG, PNG y WebP")
}

func (suite *ImageServerTestSuite) TestUpload_RejectsOversizedFile() {
	request := uploadRequest()
	request.Data = bytes.Repeat([]byte{0xff}, 5<<20+1)

	_, err := suite.service.Upload(context.Background(), consumer(), request)
	suite.Require().ErrorIs(err, server.ErrValidation)
	suite.Require().ErrorContains(err, "El archivo es demasiado grande. Máximo 5MB")
}

func (suite *ImageServerTestSuite) TestUpload_StoresFileAndRecordsImage() {
	ctx := context.Background()

	suite.imageRepo.EXPECT().AddImage(ctx, mock.MatchedBy(func(image model.Image) bool {
		return strings.HasPrefix(image.URL, "/uploads/dish/") &&
			strings.HasSuffix(image.URL, ".jpg") &&
			image.UploadedBy == 9 && image.EntityID == 7 && !image.IsPrimary &&
			image.FileSize != nil && *image.FileSize == int64(len("jpeg bytes"))
	})).Return(&model.Image{Model: gorm.Model{ID: 31}}, nil)

	image, err := suite.service.Upload(ctx, consumer(), uploadRequest())
	suite.Require().NoError(err)
	suite.Equal(uint(31), image.ID)

	entries, err := os.ReadDir(filepath.Join(suite.uploadRoot, "dish"))
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)

	stored, err := os.ReadFile(filepath.Join(suite.uploadRoot, "dish", entries[0].Name()))
	suite.Require().NoError(err)
	suite.Equal([]byte("jpeg bytes"), stored)
}

func (suite *ImageServerTestSuite) TestUpload_PrimaryClearsScopeFirst() {
	ctx := context.Background()
	request := uploadRequest()
	request.IsPrimary = true

	suite.imageRepo.EXPECT().ClearPrimary(ctx, model.EntityDish, uint(7)).Return(nil)
	suite.imageRepo.EXPECT().AddImage(ctx, mock.MatchedBy(func(image model.Image) bool {
		return image.IsPrimary
	})).Return(&model.Image{Model: gorm.Model{ID: 32}, IsPrimary: true}, nil)

	image, err := suite.service.Upload(ctx, consumer(), request)
	suite.Require().NoError(err)
	suite.True(image.IsPrimary)
}

func (suite *ImageServerTestSuite) TestSetPrimary_NotUploaderBecomesPermissionError() {
	ctx := context.Background()

	suite.imageRepo.EXPECT().GetImageForUploader(ctx, uint(31), uint(9)).Return(nil, repository.ErrImageNotFound)

	err := suite.service.SetPrimary(ctx, consumer(), 31)
	suite.Require().ErrorIs(err, server.ErrAuth)
	suite.Require().ErrorContains(err, "No tienes permisos para modificar esta imagen")
}

func (suite *ImageServerTestSuite) TestSetPrimary_UsesImageScope() {
	ctx := context.Background()

	suite.imageRepo.EXPECT().GetImageForUploader(ctx, uint(31), uint(9)).
		Return(&model.Image{Model: gorm.Model{ID: 31}, EntityType: model.EntityDish, EntityID: 7}, nil)
	suite.imageRepo.EXPECT().SetPrimaryImage(ctx, model.EntityDish, uint(7), uint(31)).Return(nil)

	suite.NoError(suite.service.SetPrimary(ctx, consumer(), 31))
}

func (suite *ImageServerTestSuite) TestDelete_RemovesRowAndFile() {
	ctx := context.Background()

	dir := filepath.Join(suite.uploadRoot, "dish")
	suite.Require().NoError(os.MkdirAll(dir, 0o755))
	suite.Require().NoError(os.WriteFile(filepath.Join(dir, "3f2c.jpg"), []byte("jpeg bytes"), 0o644))

	suite.imageRepo.EXPECT().GetImageForUploader(ctx, uint(31), uint(9)).
		Return(&model.Image{Model: gorm.Model{ID: 31}, URL: "/uploads/dish/3f2c.jpg"}, nil)
	suite.imageRepo.EXPECT().DeleteImage(ctx, uint(31)).Return(nil)

	suite.Require().NoError(suite.service.Delete(ctx, consumer(), 31))

	_, err := os.Stat(filepath.Join(dir, "3f2c.jpg"))
	suite.True(os.IsNotExist(err))
	suite.Equal(0, suite.observedLogs.Len())
}

func (suite *ImageServerTestSuite) TestDelete_MissingFileIsOnlyLogged() {
	ctx := context.Background()

	suite.imageRepo.EXPECT().GetImageForUploader(ctx, uint(31), uint(9)).
		Return(&model.Image{Model: gorm.Model{ID: 31}, URL: "/uploads/dish/desaparecida.jpg"}, nil)
	suite.imageRepo.EXPECT().DeleteImage(ctx, uint(31)).Return(nil)

	suite.Require().NoError(suite.service.Delete(ctx, consumer(), 31))

	suite.Require().Equal(1, suite.observedLogs.Len())
	suite.Equal("error removing image file", suite.observedLogs.All()[0].Message)
}
