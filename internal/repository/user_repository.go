package repository

import (
	"context"

	"github.com/orgconsole/b2b-admin-api/internal/database"
	"github.com/orgconsole/b2b-admin-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// ListByOrganization lists the users of an organization, oldest first
func (r *GormUserRepository) ListByOrganization(ctx context.Context, orgID uint64) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).
		Scopes(database.ForOrganization(orgID)).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update sets the name and role of a user
func (r *GormUserRepository) Update(ctx context.Context, id uint64, userName, role string) (int64, error) {
	return r.update(r.db.WithContext(ctx).Where("id = ?", id), userName, role)
}

// UpdateInOrganization sets the name and role of a user belonging to orgID
func (r *GormUserRepository) UpdateInOrganization(ctx context.Context, orgID, id uint64, userName, role string) (int64, error) {
	return r.update(r.db.WithContext(ctx).Scopes(database.ForOrganization(orgID)).Where("id = ?", id), userName, role)
}

func (r *GormUserRepository) update(query *gorm.DB, userName, role string) (int64, error) {
	result := query.Model(&models.User{}).Updates(map[string]interface{}{
		"user_name": userName,
		"role":      role,
	})
	return result.RowsAffected, result.Error
}

// Delete removes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	return result.RowsAffected, result.Error
}

// DeleteInOrganization removes a user belonging to orgID
func (r *GormUserRepository) DeleteInOrganization(ctx context.Context, orgID, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Scopes(database.ForOrganization(orgID)).
		Delete(&models.User{}, id)
	return result.RowsAffected, result.Error
}
