package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/domain"
	"learnhub/internal/repos"
)

func newAuthService(t *testing.T) (*AuthService, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	users := repos.NewUserRepo(db)
	return &AuthService{Users: users}, users
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	svc, users := newAuthService(t)
	require.NoError(t, svc.Register("ab", "a@b.com", "123456", ""))

	u, err := users.ByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, u.Role)
	assert.NotEqual(t, "123456", u.Password, "password must not be stored in clear")
	assert.Contains(t, u.Password, ":")
}

func TestRegisterCollectsAllFieldErrors(t *testing.T) {
	svc, _ := newAuthService(t)
	err := svc.Register("x", "not-an-email", "short", "")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 3)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthService(t)
	err := svc.Register("ab", "a@b.com", "123456", "teacher")
	assert.ErrorIs(t, err, ErrBadRole)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("ab", "a@b.com", "123456", ""))
	err := svc.Register("cd", "a@b.com", "abcdef", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginReturnsSanitizedUser(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("张三", "zhang@example.com", "secret1", domain.RoleAdmin))

	u, err := svc.Login("zhang@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "张三", u.Name)
	assert.Equal(t, "zhang@example.com", u.Email)
	assert.True(t, u.IsAdmin)
	assert.NotEmpty(t, u.ID)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("ab", "a@b.com", "123456", ""))

	_, errWrongPass := svc.Login("a@b.com", "not-the-password")
	_, errNoUser := svc.Login("nobody@b.com", "123456")

	assert.ErrorIs(t, errWrongPass, ErrBadCreds)
	assert.ErrorIs(t, errNoUser, ErrBadCreds)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestLoginRequiresBothFields(t *testing.T) {
	svc, _ := newAuthService(t)
	var ve *ValidationError
	_, err := svc.Login("", "123456")
	assert.ErrorAs(t, err, &ve)
	_, err = svc.Login("a@b.com", "")
	assert.ErrorAs(t, err, &ve)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("ab", "a@b.com", "oldpass", ""))

	assert.ErrorIs(t, svc.ResetPassword("unknown@b.com", "abcdef"), ErrEmailUnknown)

	require.NoError(t, svc.ResetPassword("a@b.com", "abcdef"))

	_, err := svc.Login("a@b.com", "abcdef")
	assert.NoError(t, err, "new password must work after reset")
	_, err = svc.Login("a@b.com", "oldpass")
	assert.ErrorIs(t, err, ErrBadCreds, "old password must stop working")
}

func TestResetPasswordValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	err := svc.ResetPassword("bad-email", "short")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "newPassword")
}

func TestNilStoreIsMisconfigured(t *testing.T) {
	svc := &AuthService{Users: nil}

	assert.ErrorIs(t, svc.Register("ab", "a@b.com", "123456", ""), ErrMisconfigured)
	_, err := svc.Login("a@b.com", "123456")
	assert.ErrorIs(t, err, ErrMisconfigured)
	assert.ErrorIs(t, svc.ResetPassword("a@b.com", "123456"), ErrMisconfigured)
}

func TestLoginIsIdempotent(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("ab", "a@b.com", "123456", ""))

	first, err := svc.Login("a@b.com", "123456")
	require.NoError(t, err)
	second, err := svc.Login("a@b.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStoreErrorIsDistinctFromAuthFailure(t *testing.T) {
	svc, users := newAuthService(t)
	require.NoError(t, svc.Register("ab", "a@b.com", "123456", ""))
	require.NoError(t, users.DB.Close()) // simulate a dead store

	_, err := svc.Login("a@b.com", "123456")
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.False(t, errors.Is(err, ErrBadCreds))
}
