package httpserver

import (
	stderrors "errors"
	"net/http"

	"slingshot/errors"

	"github.com/gin-gonic/gin"
)

// renderError maps the service error taxonomy onto HTTP statuses:
// validation → 400, authentication → 401, unknown identity → 404,
// duplicate account → 409, anything else → 500 (logged, never retried).
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrEmptyContent),
		stderrors.Is(err, errors.ErrInvalidRole),
		stderrors.Is(err, errors.ErrEmptyName),
		stderrors.Is(err, errors.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case stderrors.Is(err, errors.ErrInvalidCredentials),
		stderrors.Is(err, errors.ErrUnauthenticated),
		stderrors.Is(err, errors.ErrTokenGeneration):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	case stderrors.Is(err, errors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		s.log.Error("request failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// badRequest reports a malformed body or query with field-level detail.
func badRequest(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "errors": err.Error()})
}
