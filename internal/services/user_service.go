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
	ErrUserNotFound            = errors.New("user not found")
	ErrUserNameAndRoleRequired = errors.New("user name and role are required")
)

// UserService provides business logic for the users of an organization.
type UserService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// UserInput holds the editable attributes of a user.
type UserInput struct {
	UserName string `validate:"required"`
	Role     string `validate:"required"`
}

func (in UserInput) normalize() (UserInput, error) {
	in.UserName = trim(in.UserName)
	in.Role = trim(in.Role)
	if err := validateStruct(in, ErrUserNameAndRoleRequired); err != nil {
		return in, err
	}
	return in, nil
}

// ListUsers returns the users of an organization. An unknown organization has
// no users.
func (s *UserService) ListUsers(ctx context.Context, orgID uint64) ([]models.User, error) {
	users, err := s.userRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser adds an active user to the organization. The organization must
// exist.
func (s *UserService) CreateUser(ctx context.Context, orgID uint64, input UserInput) (*models.User, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	user := &models.User{
		OrganizationID: orgID,
		UserName:       input.UserName,
		Role:           input.Role,
		Status:         models.UserStatusActive,
		PasswordHash:   models.PlaceholderPasswordHash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateUser changes the name and role of any user.
func (s *UserService) UpdateUser(ctx context.Context, userID uint64, input UserInput) error {
	input, err := input.normalize()
	if err != nil {
		return err
	}

	affected, err := s.userRepo.Update(ctx, userID, input.UserName, input.Role)
	return checkUserWrite(affected, err, "update")
}

// UpdateOrganizationUser changes the name and role of a user of orgID.
// Users of other organizations are reported as not found.
func (s *UserService) UpdateOrganizationUser(ctx context.Context, orgID, userID uint64, input UserInput) error {
	input, err := input.normalize()
	if err != nil {
		return err
	}

	affected, err := s.userRepo.UpdateInOrganization(ctx, orgID, userID, input.UserName, input.Role)
	return checkUserWrite(affected, err, "update")
}

// DeleteUser removes any user.
func (s *UserService) DeleteUser(ctx context.Context, userID uint64) error {
	affected, err := s.userRepo.Delete(ctx, userID)
	return checkUserWrite(affected, err, "delete")
}

// DeleteOrganizationUser removes a user of orgID.
func (s *UserService) DeleteOrganizationUser(ctx context.Context, orgID, userID uint64) error {
	affected, err := s.userRepo.DeleteInOrganization(ctx, orgID, userID)
	return checkUserWrite(affected, err, "delete")
}

func checkUserWrite(affected int64, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s user: %w", op, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
