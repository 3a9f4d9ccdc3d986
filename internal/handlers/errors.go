package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/orgconsole/b2b-admin-api/internal/errors"
	"github.com/orgconsole/b2b-admin-api/internal/middleware"
	"github.com/orgconsole/b2b-admin-api/internal/services"
	"github.com/sirupsen/logrus"
)

// respondServiceError maps service errors onto HTTP responses. Store failures
// are logged and answered with a generic message.
func respondServiceError(c *gin.Context, log logrus.FieldLogger, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrInvalidOrganizationStatus):
		apierrors.BadRequest(c, "Invalid status provided")
	case errors.As(err, &validationErr):
		apierrors.MissingFields(c, capitalize(validationErr.Error()), validationErr.Fields)
	case errors.Is(err, services.ErrOrganizationNotFound):
		apierrors.NotFound(c, "Organization not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrOrganizationStatusUnreachable):
		apierrors.Conflict(c, capitalize(err.Error()))
	default:
		middleware.Logger(c, log).WithError(err).Error("request failed in service layer")
		apierrors.InternalError(c, "")
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
