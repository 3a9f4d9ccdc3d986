package models

import (
	"time"
)

type OrganizationStatus string

const (
	OrganizationStatusActive   OrganizationStatus = "Active"
	OrganizationStatusBlocked  OrganizationStatus = "Blocked"
	OrganizationStatusInactive OrganizationStatus = "Inactive"
)

// OrganizationStatuses lists every status an organization may hold.
var OrganizationStatuses = []OrganizationStatus{
	OrganizationStatusActive,
	OrganizationStatusBlocked,
	OrganizationStatusInactive,
}

// statusTransitions is keyed by (current, requested). Every pair is allowed;
// restricting the lifecycle means flipping entries here.
var statusTransitions = map[OrganizationStatus]map[OrganizationStatus]bool{
	OrganizationStatusActive: {
		OrganizationStatusActive:   true,
		OrganizationStatusBlocked:  true,
		OrganizationStatusInactive: true,
	},
	OrganizationStatusBlocked: {
		OrganizationStatusActive:   true,
		OrganizationStatusBlocked:  true,
		OrganizationStatusInactive: true,
	},
	OrganizationStatusInactive: {
		OrganizationStatusActive:   true,
		OrganizationStatusBlocked:  true,
		OrganizationStatusInactive: true,
	},
}

// ParseOrganizationStatus returns the status named by s. Matching is exact.
func ParseOrganizationStatus(s string) (OrganizationStatus, bool) {
	status := OrganizationStatus(s)
	if !status.Valid() {
		return "", false
	}
	return status, true
}

// Valid reports whether s is one of the known statuses.
func (s OrganizationStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether an organization in status s may move to next.
func (s OrganizationStatus) CanTransitionTo(next OrganizationStatus) bool {
	return statusTransitions[s][next]
}

type Organization struct {
	ID                uint64             `gorm:"primarykey" json:"id"`
	Name              string             `gorm:"type:varchar(255);not null" json:"name"`
	Slug              string             `gorm:"type:varchar(255)" json:"slug"`
	OrganizationMail  string             `gorm:"type:varchar(255);not null" json:"organization_mail"`
	Contact           string             `gorm:"type:varchar(50)" json:"contact"`
	PrimaryAdminName  string             `gorm:"type:varchar(255)" json:"primary_admin_name"`
	PrimaryAdminEmail string             `gorm:"type:varchar(255)" json:"primary_admin_email"`
	SupportEmail      string             `gorm:"type:varchar(255)" json:"support_email"`
	AltPhoneNumber    string             `gorm:"type:varchar(50)" json:"alt_phone_number"`
	MaxCoordinators   *int               `json:"max_coordinators"`
	TimezoneCommon    string             `gorm:"type:varchar(100)" json:"timezone_common"`
	TimezoneRegion    string             `gorm:"type:varchar(100)" json:"timezone_region"`
	Language          string             `gorm:"type:varchar(50)" json:"language"`
	WebsiteURL        string             `gorm:"column:website_url;type:varchar(512)" json:"website_url"`
	LogoURL           string             `gorm:"column:logo_url;type:varchar(512)" json:"logo_url"`
	Status            OrganizationStatus `gorm:"type:varchar(20);not null;default:'Inactive'" json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`

	// Relations
	Users []User `gorm:"foreignKey:OrganizationID" json:"-"`
}
