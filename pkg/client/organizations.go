package client

import (
	"context"
	"net/http"
	"time"
)

// Organization statuses
const (
	StatusActive   = "Active"
	StatusBlocked  = "Blocked"
	StatusInactive = "Inactive"
)

// Organization mirrors the API's organization resource.
type Organization struct {
	ID                uint64    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	OrganizationMail  string    `json:"organization_mail"`
	Contact           string    `json:"contact"`
	PrimaryAdminName  string    `json:"primary_admin_name"`
	PrimaryAdminEmail string    `json:"primary_admin_email"`
	SupportEmail      string    `json:"support_email"`
	AltPhoneNumber    string    `json:"alt_phone_number"`
	MaxCoordinators   *int      `json:"max_coordinators"`
	TimezoneCommon    string    `json:"timezone_common"`
	TimezoneRegion    string    `json:"timezone_region"`
	Language          string    `json:"language"`
	WebsiteURL        string    `json:"website_url"`
	LogoURL           string    `json:"logo_url"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewOrganization is the payload for CreateOrganization.
type NewOrganization struct {
	Name    string `json:"name"`
	Slug    string `json:"slug,omitempty"`
	Email   string `json:"email"`
	Contact string `json:"contact,omitempty"`
}

// OrganizationProfile is the full profile written by UpdateOrganization.
// Every field is sent; empty fields clear the stored value.
type OrganizationProfile struct {
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

// Profile returns the editable part of o.
func (o Organization) Profile() OrganizationProfile {
	return OrganizationProfile{
		Name:              o.Name,
		Slug:              o.Slug,
		OrganizationMail:  o.OrganizationMail,
		Contact:           o.Contact,
		PrimaryAdminName:  o.PrimaryAdminName,
		PrimaryAdminEmail: o.PrimaryAdminEmail,
		SupportEmail:      o.SupportEmail,
		AltPhoneNumber:    o.AltPhoneNumber,
		MaxCoordinators:   o.MaxCoordinators,
		TimezoneCommon:    o.TimezoneCommon,
		TimezoneRegion:    o.TimezoneRegion,
		Language:          o.Language,
		WebsiteURL:        o.WebsiteURL,
		LogoURL:           o.LogoURL,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Message   string `json:"message"`
	NewStatus string `json:"newStatus"`
}

func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.do(ctx, http.MethodGet, "/organizations", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *Client) CreateOrganization(ctx context.Context, org NewOrganization) (*Organization, error) {
	var created Organization
	if err := c.do(ctx, http.MethodPost, "/organizations", org, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetOrganization(ctx context.Context, id uint64) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodGet, organizationPath(id), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id uint64, profile OrganizationProfile) error {
	return c.do(ctx, http.MethodPut, organizationPath(id), profile, &messageResponse{})
}

// UpdateStatus sets the organization's status and returns the status the
// server recorded.
func (c *Client) UpdateStatus(ctx context.Context, id uint64, status string) (string, error) {
	var resp statusResponse
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, organizationPath(id)+"/status", body, &resp); err != nil {
		return "", err
	}
	return resp.NewStatus, nil
}

// DeleteOrganization permanently deletes the organization and its users.
func (c *Client) DeleteOrganization(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, organizationPath(id), nil, &messageResponse{})
}
