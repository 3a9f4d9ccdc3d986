package dto

import (
	"github.com/orgconsole/b2b-admin-api/internal/models"
	"github.com/orgconsole/b2b-admin-api/internal/services"
	"github.com/samber/lo"
)

// UserRequest is the body for creating or editing a user.
type UserRequest struct {
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

func (r UserRequest) ToInput() services.UserInput {
	return services.UserInput{
		UserName: r.UserName,
		Role:     r.Role,
	}
}

// UserDTO represents a user in API responses. The password hash is never exposed.
type UserDTO struct {
	ID             uint64            `json:"id"`
	OrganizationID uint64            `json:"organization_id"`
	UserName       string            `json:"user_name"`
	Role           string            `json:"role"`
	Status         models.UserStatus `json:"status"`
}

// ToUserDTO converts a user model to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		UserName:       user.UserName,
		Role:           user.Role,
		Status:         user.Status,
	}
}

// ToUserDTOs converts users to DTOs; the result is never nil.
func ToUserDTOs(users []models.User) []UserDTO {
	return lo.Map(users, func(user models.User, _ int) UserDTO {
		return ToUserDTO(user)
	})
}
