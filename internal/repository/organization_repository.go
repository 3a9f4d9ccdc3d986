package repository

import (
	"context"

	"github.com/orgconsole/b2b-admin-api/internal/database"
	"github.com/orgconsole/b2b-admin-api/internal/models"
	"gorm.io/gorm"
)

// profileColumns are overwritten wholesale by UpdateProfile.
var profileColumns = []string{
	"name", "slug", "organization_mail", "contact",
	"primary_admin_name", "primary_admin_email", "support_email", "alt_phone_number",
	"max_coordinators", "timezone_common", "timezone_region",
	"language", "website_url", "logo_url",
	"updated_at",
}

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// List returns every organization
func (r *GormOrganizationRepository) List(ctx context.Context) ([]models.Organization, error) {
	orgs := []models.Organization{}
	if err := r.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// Create inserts a new organization
func (r *GormOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateProfile overwrites every profile column, zero values included.
func (r *GormOrganizationRepository) UpdateProfile(ctx context.Context, id uint64, profile *models.Organization) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Organization{}).
		Where("id = ?", id).
		Select(profileColumns).
		Updates(profile)
	return result.RowsAffected, result.Error
}

// UpdateStatus sets the organization's status
func (r *GormOrganizationRepository) UpdateStatus(ctx context.Context, id uint64, status models.OrganizationStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Organization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
	return result.RowsAffected, result.Error
}

// Delete removes the organization and all of its users in a transaction
func (r *GormOrganizationRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(database.ForOrganization(id)).Delete(&models.User{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Organization{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
