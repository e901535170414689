package auth

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"saborlocal.pe/SaborLocal/configs"
	"saborlocal.pe/SaborLocal/pkg/model"
)

const userContextKey = "currentUser"

const hoursPerDay = 24

type userRepository interface {
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	repo   userRepository
	logger *zap.Logger
}

func NewManager(conf *configs.Config, repo userRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// IssueSession signs a session token carrying the user's identity and sets
// it as an http-only cookie.
func (a *Manager) IssueSession(c *gin.Context, user *model.User) error {
	ttl := time.Duration(a.conf.Auth.SessionDays) * hoursPerDay * time.Hour

	claims := jwt.MapClaims{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"user_type": string(user.UserType),
		"exp":       time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(a.conf.Auth.SecretKey))
	if err != nil {
		return err
	}

	c.SetCookie(a.conf.Auth.CookieName, signed, int(ttl.Seconds()), "/", "", false, true)

	return nil
}

func (a *Manager) ClearSession(c *gin.Context) {
	c.SetCookie(a.conf.Auth.CookieName, "", -1, "/", "", false, true)
}

// SessionMiddleware resolves the request identity from the session cookie.
// Missing, invalid or stale sessions resolve to anonymous, never to an
// error response.
func (a *Manager) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := a.resolveUser(c); user != nil {
			c.Set(userContextKey, user)
		}

		c.Next()
	}
}

// RequireUser aborts requests that did not resolve to an identity.
func (a *Manager) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Debes iniciar sesión"})

			return
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	value, found := c.Get(userContextKey)
	if !found {
		return nil
	}

	user, ok := value.(*model.User)
	if !ok {
		return nil
	}

	return user
}

func (a *Manager) resolveUser(c *gin.Context) *model.User {
	cookie, err := c.Cookie(a.conf.Auth.CookieName)
	if err != nil || len(cookie) == 0 {
		return nil
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(cookie, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Debug("error parsing session token", zap.Error(err))

		return nil
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Debug("invalid session token", zap.Any("claims", claims))

		return nil
	}

	userID, found := claims["id"].(float64)
	if !found {
		a.logger.Debug("unable to get user id from session token", zap.Any("claims", claims))

		return nil
	}

	// The referenced user must still exist; a stale session is treated as
	// not logged in.
	user, err := a.repo.GetUserByID(c.Request.Context(), uint(userID))
	if err != nil {
		a.logger.Debug("session references unknown user", zap.Uint("user_id", uint(userID)), zap.Error(err))

		return nil
	}

	return user
}
