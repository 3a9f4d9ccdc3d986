package repository

import (
	"context"

	"github.com/orgconsole/b2b-admin-api/internal/models"
)

// OrganizationRepository defines the interface for organization data access.
// Mutations that target a single row report how many rows they touched so the
// caller can tell a missing id apart from a successful write.
type OrganizationRepository interface {
	// List returns every organization
	List(ctx context.Context) ([]models.Organization, error)

	// Create inserts a new organization
	Create(ctx context.Context, org *models.Organization) error

	// FindByID finds an organization by ID
	FindByID(ctx context.Context, id uint64) (*models.Organization, error)

	// UpdateProfile overwrites every profile column of the organization
	UpdateProfile(ctx context.Context, id uint64, profile *models.Organization) (int64, error)

	// UpdateStatus sets the organization's status
	UpdateStatus(ctx context.Context, id uint64, status models.OrganizationStatus) (int64, error)

	// Delete removes the organization and its users
	Delete(ctx context.Context, id uint64) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// ListByOrganization lists the users of an organization
	ListByOrganization(ctx context.Context, orgID uint64) ([]models.User, error)

	// Create inserts a new user
	Create(ctx context.Context, user *models.User) error

	// Update sets the name and role of a user
	Update(ctx context.Context, id uint64, userName, role string) (int64, error)

	// UpdateInOrganization is Update restricted to users of orgID
	UpdateInOrganization(ctx context.Context, orgID, id uint64, userName, role string) (int64, error)

	// Delete removes a user
	Delete(ctx context.Context, id uint64) (int64, error)

	// DeleteInOrganization is Delete restricted to users of orgID
	DeleteInOrganization(ctx context.Context, orgID, id uint64) (int64, error)
}
