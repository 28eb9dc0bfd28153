package doctor

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	doctors []models.Doctor
}

func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) { return f.doctors, nil }

func (f *fakeDoctorRepo) Create(d *models.Doctor) error {
	f.doctors = append(f.doctors, *d)
	return nil
}

func (f *fakeDoctorRepo) DeleteByEmail(email string) (bool, error) {
	for i, d := range f.doctors {
		if d.Email == email {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestAddAndListDoctors(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &fakeDoctorRepo{}}

	created, err := svc.Add(models.Doctor{Name: "Dr. House", Email: "house@clinic.com", Specialty: "Diagnostics"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	doctors, err := svc.List()
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "house@clinic.com", doctors[0].Email)
}

func TestAddDoctorRequiresNameAndEmail(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &fakeDoctorRepo{}}

	_, err := svc.Add(models.Doctor{Email: "house@clinic.com"})
	require.Error(t, err)

	_, err = svc.Add(models.Doctor{Name: "Dr. House"})
	require.Error(t, err)
}

func TestRemoveDoctor(t *testing.T) {
	repo := &fakeDoctorRepo{}
	svc := &DefaultDoctorService{Repo: repo}

	_, err := svc.Add(models.Doctor{Name: "Dr. House", Email: "house@clinic.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove("house@clinic.com"))
	assert.Empty(t, repo.doctors)

	err = svc.Remove("house@clinic.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
