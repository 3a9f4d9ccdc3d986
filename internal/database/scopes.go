package database

import (
	"gorm.io/gorm"
)

// ForOrganization restricts a query to rows owned by the organization.
func ForOrganization(orgID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", orgID)
	}
}
