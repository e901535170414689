package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saborlocal.pe/SaborLocal/pkg/auth"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
	"saborlocal.pe/SaborLocal/pkg/storage"
)

const maxUploadBytes = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type ImageServer struct {
	images     repository.ImageRepository
	store      *storage.FileStore
	publicPath string
	logger     *zap.Logger
}

func NewImageServer(images repository.ImageRepository, store *storage.FileStore, publicPath string, logger *zap.Logger) *ImageServer {
	return &ImageServer{images: images, store: store, publicPath: publicPath, logger: logger}
}

type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
	EntityType  model.EntityType
	EntityID    uint
	AltText     string
	IsPrimary   bool
}

// Upload validates and stores the file, then records the image row. A
// primary upload first clears the scope's existing primary flags.
func (s *ImageServer) Upload(ctx context.Context, user *model.User, req UploadRequest) (*model.Image, error) {
	if user == nil {
		return nil, authError("Debes iniciar sesión para subir imágenes")
	}

	if len(req.Data) == 0 || !req.EntityType.Valid() || req.EntityID == 0 {
		return nil, validationError("Faltan datos requeridos")
	}

	if !allowedImageTypes[strings.ToLower(req.ContentType)] {
		return nil, validationError("Tipo de archivo no permitido. Solo se permiten JPG, PNG y WebP")
	}

	if len(req.Data) > maxUploadBytes {
		return nil, validationError("El archivo es demasiado grande. Máximo 5MB")
	}

	extension := strings.TrimPrefix(path.Ext(req.FileName), ".")
	if extension == "" {
		extension = strings.TrimPrefix(strings.ToLower(req.ContentType), "image/")
	}

	fileName, err := s.store.Save(string(req.EntityType), extension, req.Data)
	if err != nil {
		return nil, err
	}

	if req.IsPrimary {
		if err := s.images.ClearPrimary(ctx, req.EntityType, req.EntityID); err != nil {
			return nil, err
		}
	}

	size := int64(len(req.Data))

	image := model.Image{
		URL:        path.Join(s.publicPath, string(req.EntityType), fileName),
		AltText:    req.AltText,
		UploadedBy: user.ID,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		IsPrimary:  req.IsPrimary,
		FileSize:   &size,
	}

	created, err := s.images.AddImage(ctx, image)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// SetPrimary designates the image as its scope's single primary image.
func (s *ImageServer) SetPrimary(ctx context.Context, user *model.User, imageID uint) error {
	if user == nil {
		return authError("Debes iniciar sesión")
	}

	image, err := s.images.GetImageForUploader(ctx, imageID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return authError("No tienes permisos para modificar esta imagen")
		}

		return err
	}

	return s.images.SetPrimaryImage(ctx, image.EntityType, image.EntityID, image.ID)
}

// Delete removes the image row and tries to remove the stored file. The
// scope is left without a primary when the primary is deleted; no other
// image is promoted.
func (s *ImageServer) Delete(ctx context.Context, user *model.User, imageID uint) error {
	if user == nil {
		return authError("Debes iniciar sesión")
	}

	image, err := s.images.GetImageForUploader(ctx, imageID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return authError("No tienes permisos para eliminar esta imagen")
		}

		return err
	}

	if err := s.images.DeleteImage(ctx, image.ID); err != nil {
		return err
	}

	relative := strings.TrimPrefix(image.URL, s.publicPath)
	if err := s.store.Remove(relative); err != nil {
		s.logger.Warn("error removing image file", zap.String("url", image.URL), zap.Error(err))
	}

	return nil
}

func (s *ImageServer) HandleUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos requeridos"})

		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, s.logger, err, "Error al subir la imagen")

		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respondError(c, s.logger, err, "Error al subir la imagen")

		return
	}

	req := UploadRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		EntityType:  model.EntityType(c.PostForm("entityType")),
		AltText:     c.PostForm("altText"),
		IsPrimary:   c.PostForm("isPrimary") == "true",
	}

	if id := formInt(c, "entityId"); id != nil && *id > 0 {
		req.EntityID = uint(*id)
	}

	image, err := s.Upload(c.Request.Context(), auth.CurrentUser(c), req)
	if err != nil {
		respondError(c, s.logger, err, "Error al subir la imagen")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "imageId": image.ID, "url": image.URL})
}

func (s *ImageServer) HandleSetPrimary(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	if err := s.SetPrimary(c.Request.Context(), auth.CurrentUser(c), imageID); err != nil {
		respondError(c, s.logger, err, "Error al establecer imagen principal")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *ImageServer) HandleDelete(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador no válido"})

		return
	}

	if err := s.Delete(c.Request.Context(), auth.CurrentUser(c), imageID); err != nil {
		respondError(c, s.logger, err, "Error al eliminar la imagen")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *ImageServer) HandleListByEntity(c *gin.Context) {
	entityType := model.EntityType(c.Query("entityType"))

	entityID := queryInt(c, "entityId")
	if !entityType.Valid() || entityID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos requeridos"})

		return
	}

	images, err := s.images.GetImagesByEntity(c.Request.Context(), entityType, uint(entityID))
	if err != nil {
		respondError(c, s.logger, err, "Error al obtener las imágenes")

		return
	}

	payloads := make([]gin.H, 0, len(images))
	for _, image := range images {
		payloads = append(payloads, gin.H{
			"id":          image.ID,
			"url":         image.URL,
			"alt_text":    image.AltText,
			"entity_type": image.EntityType,
			"entity_id":   image.EntityID,
			"is_primary":  image.IsPrimary,
			"file_size":   image.FileSize,
			"created_at":  image.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"images": payloads})
}

// HandleServeFile serves a stored upload by its public path, inferring the
// content type from the file extension.
func (s *ImageServer) HandleServeFile(c *gin.Context) {
	relative := c.Param("filepath")

	data, err := s.store.Read(relative)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			c.String(http.StatusNotFound, "File not found")

			return
		}

		respondError(c, s.logger, err, "Error al leer la imagen")

		return
	}

	c.Data(http.StatusOK, storage.ContentTypeForExtension(path.Ext(relative)), data)
}
