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

// OrganizationHandler serves the /api/organizations resource.
type OrganizationHandler struct {
	orgService *services.OrganizationService
	log        logrus.FieldLogger
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgService *services.OrganizationService, log logrus.FieldLogger) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		log:        log,
	}
}

// ListOrganizations returns every organization
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// CreateOrganization creates a new, inactive organization
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	middleware.Logger(c, h.log).WithField("organization_id", org.ID).Info("organization created")
	c.JSON(http.StatusCreated, org)
}

// GetOrganization returns organization details
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, _ := middleware.GetID(c, middleware.ContextKeyOrganizationID)

	org, err := h.orgService.GetOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization replaces the organization's profile
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, _ := middleware.GetID(c, middleware.ContextKeyOrganizationID)

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orgService.UpdateOrganization(c.Request.Context(), orgID, req.ToInput()); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Organization updated successfully"})
}

// UpdateOrganizationStatus moves the organization to another status
func (h *OrganizationHandler) UpdateOrganizationStatus(c *gin.Context) {
	orgID, _ := middleware.GetID(c, middleware.ContextKeyOrganizationID)

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid status provided")
		return
	}

	status, err := h.orgService.UpdateStatus(c.Request.Context(), orgID, req.Status)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	middleware.Logger(c, h.log).WithFields(logrus.Fields{
		"organization_id": orgID,
		"status":          status,
	}).Info("organization status changed")
	c.JSON(http.StatusOK, dto.StatusResponse{
		Message:   "Organization status updated successfully",
		NewStatus: status,
	})
}

// DeleteOrganization permanently deletes an organization and its users
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	orgID, _ := middleware.GetID(c, middleware.ContextKeyOrganizationID)

	if err := h.orgService.DeleteOrganization(c.Request.Context(), orgID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	middleware.Logger(c, h.log).WithField("organization_id", orgID).Info("organization deleted")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Organization deleted successfully"})
}
