package user

import (
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	getErr error
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for i := range users {
		repo.users[users[i].Email] = &users[i]
	}
	return repo
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Upsert(u *models.User) error {
	if existing, ok := f.users[u.Email]; ok {
		existing.Name = u.Name
		existing.PhotoURL = u.PhotoURL
		return nil
	}
	stored := *u
	stored.Role = models.RolePatient
	f.users[u.Email] = &stored
	return nil
}

func (f *fakeUserRepo) SetRole(email string, role models.Role) (bool, error) {
	u, ok := f.users[email]
	if !ok {
		return false, nil
	}
	u.Role = role
	return true, nil
}

func TestIsAdmin(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(
		models.User{Email: "admin@clinic.com", Role: models.RoleAdmin},
		models.User{Email: "patient@clinic.com", Role: models.RolePatient},
	)}

	admin, err := svc.IsAdmin("admin@clinic.com")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin("patient@clinic.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestIsAdminMissingUserIsNotAnError(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	admin, err := svc.IsAdmin("nobody@clinic.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestIsAdminPropagatesStoreErrors(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("connection reset")
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.IsAdmin("admin@clinic.com")
	require.Error(t, err)
}

func TestPromoteToAdmin(t *testing.T) {
	repo := newFakeUserRepo(
		models.User{Email: "admin@clinic.com", Role: models.RoleAdmin},
		models.User{Email: "patient@clinic.com", Role: models.RolePatient},
	)
	svc := &DefaultUserService{Repo: repo}

	err := svc.PromoteToAdmin("admin@clinic.com", "patient@clinic.com")
	require.NoError(t, err)

	promoted, err := svc.IsAdmin("patient@clinic.com")
	require.NoError(t, err)
	assert.True(t, promoted)
}

func TestPromoteToAdminRequiresAdminRequester(t *testing.T) {
	repo := newFakeUserRepo(
		models.User{Email: "patient@clinic.com", Role: models.RolePatient},
		models.User{Email: "other@clinic.com", Role: models.RolePatient},
	)
	svc := &DefaultUserService{Repo: repo}

	err := svc.PromoteToAdmin("patient@clinic.com", "other@clinic.com")
	assert.ErrorIs(t, err, ErrForbidden)

	// Unknown requesters are not admins either.
	err = svc.PromoteToAdmin("nobody@clinic.com", "other@clinic.com")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPromoteToAdminUnknownTarget(t *testing.T) {
	repo := newFakeUserRepo(models.User{Email: "admin@clinic.com", Role: models.RoleAdmin})
	svc := &DefaultUserService{Repo: repo}

	err := svc.PromoteToAdmin("admin@clinic.com", "nobody@clinic.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDemoteToPatient(t *testing.T) {
	repo := newFakeUserRepo(
		models.User{Email: "admin@clinic.com", Role: models.RoleAdmin},
		models.User{Email: "second@clinic.com", Role: models.RoleAdmin},
	)
	svc := &DefaultUserService{Repo: repo}

	err := svc.DemoteToPatient("admin@clinic.com", "second@clinic.com")
	require.NoError(t, err)

	stillAdmin, err := svc.IsAdmin("second@clinic.com")
	require.NoError(t, err)
	assert.False(t, stillAdmin)
}

func TestUpsertUserIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.UpsertUser(models.User{Email: "new@clinic.com", Name: "New Patient"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// New accounts start as patients.
	stored, err := repo.GetByEmail("new@clinic.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.RolePatient, stored.Role)
}

func TestUpsertUserRequiresEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.UpsertUser(models.User{Name: "No Email"})
	require.Error(t, err)
}

func TestUpsertUserDoesNotResetRole(t *testing.T) {
	repo := newFakeUserRepo(models.User{Email: "admin@clinic.com", Role: models.RoleAdmin})
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.UpsertUser(models.User{Email: "admin@clinic.com", Name: "Renamed"})
	require.NoError(t, err)

	admin, err := svc.IsAdmin("admin@clinic.com")
	require.NoError(t, err)
	assert.True(t, admin)
}
