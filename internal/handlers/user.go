package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgconsole/b2b-admin-api/internal/dto"
	apierrors "github.com/orgconsole/b2b-admin-api/internal/errors"
	"github.com/orgconsole/b2b-admin-api/internal/middleware"
	"github.com/orgconsole/b2b-admin-api/internal/services"
	"github.com/sirupsen/logrus"
)

// UserHandler serves users, both nested under an organization and by bare id.
type UserHandler struct {
	userService *services.UserService
	log         logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// ListUsers returns the users of the organization in the path
func (h *UserHandler) ListUsers(c *gin.Context) {
	orgID, _ := middleware.GetID(c, middleware.ContextKeyOrganizationID)

	users, err := h.userService.ListUsers(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// CreateUser adds a user to the organization in the path
func (h *UserHandler) CreateUser(c *gin.Context) {
	orgID, _ := middleware.GetID(c, middleware.ContextKeyOrganizationID)

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), orgID, req.ToInput())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// UpdateUser edits a user. When the route carries an organization id the
// user must belong to it.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, _ := middleware.GetID(c, middleware.ContextKeyUserID)

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var err error
	if orgID, scoped := middleware.GetID(c, middleware.ContextKeyOrganizationID); scoped {
		err = h.userService.UpdateOrganizationUser(c.Request.Context(), orgID, userID, req.ToInput())
	} else {
		err = h.userService.UpdateUser(c.Request.Context(), userID, req.ToInput())
	}
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User updated successfully"})
}

// DeleteUser removes a user, scoped like UpdateUser.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, _ := middleware.GetID(c, middleware.ContextKeyUserID)

	var err error
	if orgID, scoped := middleware.GetID(c, middleware.ContextKeyOrganizationID); scoped {
		err = h.userService.DeleteOrganizationUser(c.Request.Context(), orgID, userID)
	} else {
		err = h.userService.DeleteUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
