package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrDuplicate  = errors.New("duplicate")
	ErrAuth       = errors.New("not authorized")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// OperationError pairs a taxonomy sentinel with the Spanish message shown
// to the user.
type OperationError struct {
	Kind    error
	Message string
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return e.Kind }

func validationError(message string) error {
	return &OperationError{Kind: ErrValidation, Message: message}
}

func duplicateError(message string) error {
	return &OperationError{Kind: ErrDuplicate, Message: message}
}

func authError(message string) error {
	return &OperationError{Kind: ErrAuth, Message: message}
}

func notFoundError(message string) error {
	return &OperationError{Kind: ErrNotFound, Message: message}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a business-rule violation with its own message and
// collapses anything unexpected into the operation's generic message. No
// lower-layer error text reaches the user.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("operation failed", zap.String("path", c.FullPath()), zap.Error(err))

		message = fallback
	}

	c.JSON(status, gin.H{"error": message})
}
