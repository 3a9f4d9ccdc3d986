package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgconsole/b2b-admin-api/internal/models"
	"github.com/orgconsole/b2b-admin-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOrganizationNotFound          = errors.New("organization not found")
	ErrOrganizationNameMailRequired  = errors.New("name and organization mail are required")
	ErrInvalidOrganizationStatus     = errors.New("invalid status provided")
	ErrOrganizationStatusUnreachable = errors.New("organization status transition not allowed")
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name    string `validate:"required"`
	Slug    string
	Email   string `validate:"required"`
	Contact string
}

// UpdateOrganizationInput carries the complete profile of an organization.
// Fields left empty are stored empty.
type UpdateOrganizationInput struct {
	Name              string
	Slug              string
	OrganizationMail  string
	Contact           string
	PrimaryAdminName  string
	PrimaryAdminEmail string
	SupportEmail      string
	AltPhoneNumber    string
	MaxCoordinators   *int
	TimezoneCommon    string
	TimezoneRegion    string
	Language          string
	WebsiteURL        string
	LogoURL           string
}

// ListOrganizations returns every organization.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// CreateOrganization stores a new organization. New organizations always
// start Inactive.
func (s *OrganizationService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*models.Organization, error) {
	input.Name = trim(input.Name)
	input.Email = trim(input.Email)
	if err := validateStruct(input, ErrOrganizationNameMailRequired); err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:             input.Name,
		Slug:             input.Slug,
		OrganizationMail: input.Email,
		Contact:          input.Contact,
		Status:           models.OrganizationStatusInactive,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return org, nil
}

// GetOrganization returns a single organization.
func (s *OrganizationService) GetOrganization(ctx context.Context, id uint64) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

// UpdateOrganization overwrites the organization's profile. Status is not
// part of the profile.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, id uint64, input UpdateOrganizationInput) error {
	profile := &models.Organization{
		Name:              input.Name,
		Slug:              input.Slug,
		OrganizationMail:  input.OrganizationMail,
		Contact:           input.Contact,
		PrimaryAdminName:  input.PrimaryAdminName,
		PrimaryAdminEmail: input.PrimaryAdminEmail,
		SupportEmail:      input.SupportEmail,
		AltPhoneNumber:    input.AltPhoneNumber,
		MaxCoordinators:   input.MaxCoordinators,
		TimezoneCommon:    input.TimezoneCommon,
		TimezoneRegion:    input.TimezoneRegion,
		Language:          input.Language,
		WebsiteURL:        input.WebsiteURL,
		LogoURL:           input.LogoURL,
	}

	affected, err := s.orgRepo.UpdateProfile(ctx, id, profile)
	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	if affected == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

// UpdateStatus moves the organization to the requested status.
func (s *OrganizationService) UpdateStatus(ctx context.Context, id uint64, requested string) (models.OrganizationStatus, error) {
	status, ok := models.ParseOrganizationStatus(requested)
	if !ok {
		return "", &ValidationError{Sentinel: ErrInvalidOrganizationStatus, Fields: []string{"Status"}}
	}

	org, err := s.GetOrganization(ctx, id)
	if err != nil {
		return "", err
	}
	if !org.Status.CanTransitionTo(status) {
		return "", fmt.Errorf("%w: %s to %s", ErrOrganizationStatusUnreachable, org.Status, status)
	}

	affected, err := s.orgRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return "", fmt.Errorf("failed to update organization status: %w", err)
	}
	if affected == 0 {
		return "", ErrOrganizationNotFound
	}
	return status, nil
}

// DeleteOrganization permanently removes an organization and its users.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, id uint64) error {
	affected, err := s.orgRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	if affected == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}
