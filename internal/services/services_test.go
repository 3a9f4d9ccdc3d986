package services

import (
	"context"
	"errors"
	"testing"

	"github.com/orgconsole/b2b-admin-api/internal/models"
	"github.com/orgconsole/b2b-admin-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceTestEnv struct {
	db          *gorm.DB
	orgService  *OrganizationService
	userService *UserService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.Organization{}, &models.User{}))

	orgRepo := repository.NewOrganizationRepository(db)
	return serviceTestEnv{
		db:          db,
		orgService:  NewOrganizationService(orgRepo),
		userService: NewUserService(repository.NewUserRepository(db), orgRepo),
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCreateOrganization_RequiresNameAndEmail(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	inputs := []CreateOrganizationInput{
		{Email: "a@acme.com"},
		{Name: "Acme"},
		{Name: "   ", Email: "a@acme.com"},
		{},
	}
	for _, input := range inputs {
		org, err := env.orgService.CreateOrganization(ctx, input)
		require.Nil(t, org)
		require.ErrorIs(t, err, ErrValidation)
		require.ErrorIs(t, err, ErrOrganizationNameMailRequired)
	}
	require.Zero(t, countRows(t, env.db, &models.Organization{}))
}

func TestCreateOrganization_StartsInactive(t *testing.T) {
	env := setupServiceTestEnv(t)

	org, err := env.orgService.CreateOrganization(context.Background(), CreateOrganizationInput{
		Name:    "Acme",
		Slug:    "acme",
		Email:   "a@acme.com",
		Contact: "555-0100",
	})
	require.NoError(t, err)
	require.NotZero(t, org.ID)
	require.Equal(t, models.OrganizationStatusInactive, org.Status)
	require.Equal(t, "a@acme.com", org.OrganizationMail)

	stored, err := env.orgService.GetOrganization(context.Background(), org.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrganizationStatusInactive, stored.Status)
}

func TestCreateOrganization_AllowsDuplicateSlugAndEmail(t *testing.T) {
	env := setupServiceTestEnv(t)
	input := CreateOrganizationInput{Name: "Acme", Slug: "acme", Email: "a@acme.com"}

	first, err := env.orgService.CreateOrganization(context.Background(), input)
	require.NoError(t, err)
	second, err := env.orgService.CreateOrganization(context.Background(), input)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestGetOrganization_NotFound(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.orgService.GetOrganization(context.Background(), 404)
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestUpdateOrganization_MissingIDIsNotFound(t *testing.T) {
	env := setupServiceTestEnv(t)

	err := env.orgService.UpdateOrganization(context.Background(), 12, UpdateOrganizationInput{Name: "Ghost"})
	require.ErrorIs(t, err, ErrOrganizationNotFound)
	require.Zero(t, countRows(t, env.db, &models.Organization{}))
}

func TestUpdateOrganization_LeavesStatusAlone(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org, err := env.orgService.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	_, err = env.orgService.UpdateStatus(ctx, org.ID, "Blocked")
	require.NoError(t, err)

	require.NoError(t, env.orgService.UpdateOrganization(ctx, org.ID, UpdateOrganizationInput{
		Name:             "Acme Ltd",
		OrganizationMail: "ops@acme.com",
		TimezoneRegion:   "Europe/Berlin",
	}))

	stored, err := env.orgService.GetOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Ltd", stored.Name)
	require.Equal(t, "Europe/Berlin", stored.TimezoneRegion)
	require.Equal(t, models.OrganizationStatusBlocked, stored.Status)
}

func TestUpdateStatus_RejectsUnknownStatusWithoutWriting(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org, err := env.orgService.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)

	for _, status := range []string{"", "active", "Deleted", "ACTIVE", " Active"} {
		_, err := env.orgService.UpdateStatus(ctx, org.ID, status)
		require.ErrorIs(t, err, ErrValidation, status)
		require.ErrorIs(t, err, ErrInvalidOrganizationStatus, status)
	}

	stored, err := env.orgService.GetOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrganizationStatusInactive, stored.Status)
}

func TestUpdateStatus_EveryTransitionIsAllowed(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org, err := env.orgService.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)

	for _, from := range models.OrganizationStatuses {
		for _, to := range models.OrganizationStatuses {
			_, err := env.orgService.UpdateStatus(ctx, org.ID, string(from))
			require.NoError(t, err)

			got, err := env.orgService.UpdateStatus(ctx, org.ID, string(to))
			require.NoError(t, err, "%s -> %s", from, to)
			require.Equal(t, to, got)
		}
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.orgService.UpdateStatus(context.Background(), 77, "Active")
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestDeleteOrganization_CascadesToUsers(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org, err := env.orgService.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	other, err := env.orgService.CreateOrganization(ctx, CreateOrganizationInput{Name: "Other", Email: "o@other.com"})
	require.NoError(t, err)
	_, err = env.userService.CreateUser(ctx, org.ID, UserInput{UserName: "Bob", Role: "Admin"})
	require.NoError(t, err)
	_, err = env.userService.CreateUser(ctx, other.ID, UserInput{UserName: "Eve", Role: "Member"})
	require.NoError(t, err)

	require.NoError(t, env.orgService.DeleteOrganization(ctx, org.ID))

	require.EqualValues(t, 1, countRows(t, env.db, &models.Organization{}))
	users, err := env.userService.ListUsers(ctx, org.ID)
	require.NoError(t, err)
	require.Empty(t, users)
	users, err = env.userService.ListUsers(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.ErrorIs(t, env.orgService.DeleteOrganization(ctx, org.ID), ErrOrganizationNotFound)
}

func (env serviceTestEnv) createOrganization(t *testing.T, name string) *models.Organization {
	t.Helper()
	org, err := env.orgService.CreateOrganization(context.Background(), CreateOrganizationInput{Name: name, Email: "admin@" + name + ".test"})
	require.NoError(t, err)
	return org
}

func TestCreateUser_DefaultsAndValidation(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org := env.createOrganization(t, "acme")

	user, err := env.userService.CreateUser(ctx, org.ID, UserInput{UserName: "Bob", Role: "Admin"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, org.ID, user.OrganizationID)
	require.Equal(t, models.UserStatusActive, user.Status)
	require.Equal(t, models.PlaceholderPasswordHash, user.PasswordHash)

	_, err = env.userService.CreateUser(ctx, org.ID, UserInput{UserName: "Bob"})
	require.ErrorIs(t, err, ErrUserNameAndRoleRequired)
	_, err = env.userService.CreateUser(ctx, org.ID, UserInput{Role: "Admin"})
	require.ErrorIs(t, err, ErrValidation)
	require.EqualValues(t, 1, countRows(t, env.db, &models.User{}))
}

func TestCreateUser_UnknownOrganization(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.userService.CreateUser(context.Background(), 5, UserInput{UserName: "Bob", Role: "Admin"})
	require.ErrorIs(t, err, ErrOrganizationNotFound)
	require.Zero(t, countRows(t, env.db, &models.User{}))
}

func TestListUsers_UnknownOrganizationIsEmpty(t *testing.T) {
	env := setupServiceTestEnv(t)

	users, err := env.userService.ListUsers(context.Background(), 31337)
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)
}

func TestUpdateUser(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org := env.createOrganization(t, "acme")
	user, err := env.userService.CreateUser(ctx, org.ID, UserInput{UserName: "Bob", Role: "Member"})
	require.NoError(t, err)

	require.NoError(t, env.userService.UpdateUser(ctx, user.ID, UserInput{UserName: "Robert", Role: "Co-ordinator"}))
	require.ErrorIs(t, env.userService.UpdateUser(ctx, 999, UserInput{UserName: "X", Role: "Admin"}), ErrUserNotFound)
	require.ErrorIs(t, env.userService.UpdateUser(ctx, user.ID, UserInput{UserName: "X"}), ErrValidation)

	users, err := env.userService.ListUsers(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Robert", users[0].UserName)
	require.Equal(t, "Co-ordinator", users[0].Role)
}

func TestOrganizationScopedUserWrites(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org := env.createOrganization(t, "acme")
	other := env.createOrganization(t, "other")
	user, err := env.userService.CreateUser(ctx, org.ID, UserInput{UserName: "Bob", Role: "Member"})
	require.NoError(t, err)

	err = env.userService.UpdateOrganizationUser(ctx, other.ID, user.ID, UserInput{UserName: "Mallory", Role: "Admin"})
	require.ErrorIs(t, err, ErrUserNotFound)
	require.ErrorIs(t, env.userService.DeleteOrganizationUser(ctx, other.ID, user.ID), ErrUserNotFound)

	require.NoError(t, env.userService.UpdateOrganizationUser(ctx, org.ID, user.ID, UserInput{UserName: "Bobby", Role: "Admin"}))
	require.NoError(t, env.userService.DeleteOrganizationUser(ctx, org.ID, user.ID))
	require.Zero(t, countRows(t, env.db, &models.User{}))
}

func TestDeleteUser(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	org := env.createOrganization(t, "acme")
	user, err := env.userService.CreateUser(ctx, org.ID, UserInput{UserName: "Bob", Role: "Member"})
	require.NoError(t, err)

	require.NoError(t, env.userService.DeleteUser(ctx, user.ID))
	require.ErrorIs(t, env.userService.DeleteUser(ctx, user.ID), ErrUserNotFound)
}

// failingOrgRepo fails every call with err.
type failingOrgRepo struct {
	repository.OrganizationRepository
	err error
}

func (r failingOrgRepo) List(context.Context) ([]models.Organization, error) { return nil, r.err }
func (r failingOrgRepo) Create(context.Context, *models.Organization) error { return r.err }
func (r failingOrgRepo) Delete(context.Context, uint64) (int64, error)      { return 0, r.err }
func (r failingOrgRepo) FindByID(context.Context, uint64) (*models.Organization, error) {
	return nil, r.err
}

func TestOrganizationService_WrapsStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewOrganizationService(failingOrgRepo{err: storeErr})
	ctx := context.Background()

	_, err := svc.ListOrganizations(ctx)
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme", Email: "a@acme.com"})
	require.ErrorIs(t, err, storeErr)

	err = svc.DeleteOrganization(ctx, 1)
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrOrganizationNotFound)
}

func TestCreateUser_WrapsOrganizationLookupErrors(t *testing.T) {
	env := setupServiceTestEnv(t)
	storeErr := errors.New("connection reset")
	svc := NewUserService(repository.NewUserRepository(env.db), failingOrgRepo{err: storeErr})

	_, err := svc.CreateUser(context.Background(), 1, UserInput{UserName: "Bob", Role: "Admin"})
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrOrganizationNotFound)
	require.Zero(t, countRows(t, env.db, &models.User{}))
}
