package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/orgconsole/b2b-admin-api/internal/errors"
)

// Context keys for parsed path parameters
const (
	ContextKeyOrganizationID = "organization_id"
	ContextKeyUserID         = "user_id"
)

// RequireIDParam parses the named path parameter as a positive integer and
// stores it in the context under key.
func RequireIDParam(param, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || id == 0 {
			apierrors.InvalidFormat(c, "Invalid "+param+" parameter")
			c.Abort()
			return
		}

		c.Set(key, id)
		c.Next()
	}
}

// GetID retrieves an ID stored by RequireIDParam
func GetID(c *gin.Context, key string) (uint64, bool) {
	value, exists := c.Get(key)
	if !exists {
		return 0, false
	}

	id, ok := value.(uint64)
	return id, ok
}
