package models

import (
	"time"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "Active"
)

// Role labels offered by the admin console. The API stores any non-empty role.
const (
	RoleAdmin       = "Admin"
	RoleCoordinator = "Co-ordinator"
	RoleMember      = "Member"
)

// PlaceholderPasswordHash is stored for every user; there is no credential flow.
const PlaceholderPasswordHash = "temporary_placeholder_hash"

type User struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	OrganizationID uint64     `gorm:"not null" json:"organization_id"`
	UserName       string     `gorm:"type:varchar(255);not null" json:"user_name"`
	PasswordHash   string     `gorm:"type:varchar(255);not null" json:"-"`
	Role           string     `gorm:"type:varchar(50);not null" json:"role"`
	Status         UserStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
