package dto

import (
	"github.com/orgconsole/b2b-admin-api/internal/models"
	"github.com/orgconsole/b2b-admin-api/internal/services"
)

// CreateOrganizationRequest is the body of POST /api/organizations.
// Presence of name and email is checked by the service.
type CreateOrganizationRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

func (r CreateOrganizationRequest) ToInput() services.CreateOrganizationInput {
	return services.CreateOrganizationInput{
		Name:    r.Name,
		Slug:    r.Slug,
		Email:   r.Email,
		Contact: r.Contact,
	}
}

// UpdateOrganizationRequest is the full profile sent with PUT /api/organizations/:id.
// Status, if present, is ignored.
type UpdateOrganizationRequest struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	OrganizationMail  string `json:"organization_mail"`
	Contact           string `json:"contact"`
	PrimaryAdminName  string `json:"primary_admin_name"`
	PrimaryAdminEmail string `json:"primary_admin_email"`
	SupportEmail      string `json:"support_email"`
	AltPhoneNumber    string `json:"alt_phone_number"`
	MaxCoordinators   *int   `json:"max_coordinators"`
	TimezoneCommon    string `json:"timezone_common"`
	TimezoneRegion    string `json:"timezone_region"`
	Language          string `json:"language"`
	WebsiteURL        string `json:"website_url"`
	LogoURL           string `json:"logo_url"`
}

func (r UpdateOrganizationRequest) ToInput() services.UpdateOrganizationInput {
	return services.UpdateOrganizationInput{
		Name:              r.Name,
		Slug:              r.Slug,
		OrganizationMail:  r.OrganizationMail,
		Contact:           r.Contact,
		PrimaryAdminName:  r.PrimaryAdminName,
		PrimaryAdminEmail: r.PrimaryAdminEmail,
		SupportEmail:      r.SupportEmail,
		AltPhoneNumber:    r.AltPhoneNumber,
		MaxCoordinators:   r.MaxCoordinators,
		TimezoneCommon:    r.TimezoneCommon,
		TimezoneRegion:    r.TimezoneRegion,
		Language:          r.Language,
		WebsiteURL:        r.WebsiteURL,
		LogoURL:           r.LogoURL,
	}
}

// UpdateStatusRequest is the body of PATCH /api/organizations/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse acknowledges a status change.
type StatusResponse struct {
	Message   string                    `json:"message"`
	NewStatus models.OrganizationStatus `json:"newStatus"`
}

// MessageResponse acknowledges a mutation that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}
