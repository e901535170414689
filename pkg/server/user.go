package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"saborlocal.pe/SaborLocal/pkg/auth"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
)

type UserServer struct {
	users  repository.UserRepository
	auth   *auth.Manager
	logger *zap.Logger
}

func NewUserServer(users repository.UserRepository, authManager *auth.Manager, logger *zap.Logger) *UserServer {
	return &UserServer{users: users, auth: authManager, logger: logger}
}

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
	UserType string
}

// Register creates the account and, for establishment accounts, its
// Establishment record in the same unit of work.
func (u *UserServer) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" || req.UserType == "" {
		return nil, validationError("Todos los campos son obligatorios")
	}

	userType := model.UserType(req.UserType)
	if userType != model.UserTypeConsumer && userType != model.UserTypeEstablishment {
		return nil, validationError("Tipo de usuario no válido")
	}

	_, err := u.users.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, duplicateError("El email ya está registrado")
	}

	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		UserType:     userType,
	}

	if req.Phone != "" {
		formatted := formatPeruvianPhone(req.Phone)
		user.Phone = &formatted
	}

	var establishment *model.Establishment
	if userType == model.UserTypeEstablishment {
		establishment = &model.Establishment{
			BusinessName: req.Name,
			Address:      "Dirección pendiente",
			City:         "Lima",
			Country:      "Perú",
			IsActive:     true,
		}
	}

	created, err := u.users.AddUser(ctx, user, establishment)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (u *UserServer) Login(ctx context.Context, email string, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, validationError("Email y contraseña son obligatorios")
	}

	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, notFoundError("Usuario no encontrado")
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, authError("Contraseña incorrecta")
	}

	return user, nil
}

// formatPeruvianPhone normalizes a phone number into +51-XXX-XXX-XXX form.
func formatPeruvianPhone(phone string) string {
	var digits strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()

	if strings.HasPrefix(cleaned, "51") && len(cleaned) == 11 {
		return "+51-" + cleaned[2:5] + "-" + cleaned[5:8] + "-" + cleaned[8:]
	}

	if len(cleaned) == 9 && strings.HasPrefix(cleaned, "9") {
		return "+51-" + cleaned[0:3] + "-" + cleaned[3:6] + "-" + cleaned[6:]
	}

	return "+51-" + phone
}

func (u *UserServer) HandleRegister(c *gin.Context) {
	req := RegisterRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Name:     c.PostForm("name"),
		Phone:    c.PostForm("phone"),
		UserType: c.PostForm("userType"),
	}

	user, err := u.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, u.logger, err, "Error al registrar usuario")

		return
	}

	if err := u.auth.IssueSession(c, user); err != nil {
		u.logger.Error("error issuing session", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(user)})
}

func (u *UserServer) HandleLogin(c *gin.Context) {
	user, err := u.Login(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		respondError(c, u.logger, err, "Error al iniciar sesión")

		return
	}

	if err := u.auth.IssueSession(c, user); err != nil {
		u.logger.Error("error issuing session", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(user)})
}

func (u *UserServer) HandleLogout(c *gin.Context) {
	u.auth.ClearSession(c)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (u *UserServer) HandleCurrentUser(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})

		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":                user.ID,
		"uuid":              user.UUID.String(),
		"email":             user.Email,
		"name":              user.Name,
		"user_type":         user.UserType,
		"phone":             user.Phone,
		"profile_image_url": user.ProfileImageURL,
		"is_verified":       user.IsVerified,
	}
}
