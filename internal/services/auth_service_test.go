package services

import (
	"testing"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeCatalogRepo) {
	users := newFakeUserRepo()
	catalogs := newFakeCatalogRepo()
	return NewAuthService(users, catalogs, fakeHasher{}, fakeIssuer{}), users, catalogs
}

func registration(catalogs *fakeCatalogRepo, email, artisticName string) Registration {
	return Registration{
		Email:        email,
		Password:     "s3cret",
		ArtisticName: artisticName,
		RoleID:       catalogs.roleByName(catalog.RoleMusician).ID,
		Genres:       []string{"punk", "rock"},
	}
}

func TestRegister(t *testing.T) {
	svc, users, catalogs := newAuthFixture()

	result, err := svc.Register(registration(catalogs, "joe@example.com", "Strummer"))
	require.NoError(t, err)
	assert.NotZero(t, result.UserID)
	assert.Equal(t, "Strummer", result.ArtisticName)
	assert.Equal(t, "token-for-joe@example.com", result.Token)

	stored, ok, _ := users.FindByEmail("joe@example.com")
	require.True(t, ok)
	assert.Equal(t, "hashed:s3cret", stored.Password)
	assert.True(t, stored.Available)
	assert.Len(t, stored.Genres, 2)
}

func TestRegisterExplicitUnavailable(t *testing.T) {
	svc, users, catalogs := newAuthFixture()

	reg := registration(catalogs, "joe@example.com", "Strummer")
	unavailable := false
	reg.Available = &unavailable

	_, err := svc.Register(reg)
	require.NoError(t, err)

	stored, _, _ := users.FindByEmail("joe@example.com")
	assert.False(t, stored.Available)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, catalogs := newAuthFixture()
	_, err := svc.Register(registration(catalogs, "joe@example.com", "Strummer"))
	require.NoError(t, err)
	saves := users.saveCalls

	_, err = svc.Register(registration(catalogs, "joe@example.com", "Jones"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, saves, users.saveCalls)
}

func TestRegisterDuplicateArtisticName(t *testing.T) {
	svc, _, catalogs := newAuthFixture()
	_, err := svc.Register(registration(catalogs, "joe@example.com", "Strummer"))
	require.NoError(t, err)

	_, err = svc.Register(registration(catalogs, "mick@example.com", "strummer"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	svc, _, catalogs := newAuthFixture()

	reg := registration(catalogs, "boss@example.com", "Boss")
	reg.RoleID = catalogs.roleByName(catalog.RoleAdmin).ID

	_, err := svc.Register(reg)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindRuleViolation))
}

func TestRegisterUnknownRole(t *testing.T) {
	svc, _, catalogs := newAuthFixture()

	reg := registration(catalogs, "joe@example.com", "Strummer")
	reg.RoleID = 99

	_, err := svc.Register(reg)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRegisterInvalidGenre(t *testing.T) {
	svc, _, catalogs := newAuthFixture()

	reg := registration(catalogs, "joe@example.com", "Strummer")
	reg.Genres = []string{"polka"}

	_, err := svc.Register(reg)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindRuleViolation))
}

func TestLogin(t *testing.T) {
	svc, _, catalogs := newAuthFixture()
	_, err := svc.Register(registration(catalogs, "joe@example.com", "Strummer"))
	require.NoError(t, err)

	result, err := svc.Login("joe@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Strummer", result.ArtisticName)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _, catalogs := newAuthFixture()
	_, err := svc.Register(registration(catalogs, "joe@example.com", "Strummer"))
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Login("nobody@example.com", "s3cret")
	_, errWrongPass := svc.Login("joe@example.com", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.True(t, apperr.IsKind(errUnknown, apperr.KindUnauthorized))
	assert.True(t, apperr.IsKind(errWrongPass, apperr.KindUnauthorized))
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}
