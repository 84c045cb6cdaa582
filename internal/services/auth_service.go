package services

import (
	"database/sql"
	"errors"
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/password"
	"learnhub/internal/repos"
	"learnhub/internal/validate"
)

var (
	// ErrBadCreds deliberately covers both unknown email and wrong
	// password so a caller cannot probe which one failed.
	ErrBadCreds = errors.New("email or password incorrect")

	ErrEmailTaken    = errors.New("email already registered")
	ErrEmailUnknown  = errors.New("email not registered")
	ErrBadRole       = errors.New("role must be student or admin")
	ErrMisconfigured = errors.New("server misconfigured: no database")
)

// ValidationError carries every failed field, not just the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// StoreError wraps any underlying data-access failure.
type StoreError struct{ Err error }

func (e *StoreError) Error() string { return fmt.Sprintf("store error: %v", e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

type AuthService struct {
	Users *repos.UserRepo // nil when DATABASE_URL is absent
}

// Register creates a new student (or admin) account. Validation runs
// before any store access and reports all bad fields at once.
func (s *AuthService) Register(name, email, pass, role string) error {
	fields := map[string]string{}
	if _, ok := validate.Name(name); !ok {
		fields["name"] = "name must be 2-20 characters: letters, CJK, digits or underscore"
	}
	if _, ok := validate.Email(email); !ok {
		fields["email"] = "a valid email address is required"
	}
	if !validate.Password(pass) {
		fields["password"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	if role == "" {
		role = domain.RoleStudent
	}
	if !validate.Role(role) {
		return ErrBadRole
	}
	if s.Users == nil {
		return ErrMisconfigured
	}

	if _, err := s.Users.ByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Err: err}
	}

	u := &domain.User{Username: name, Email: email, Password: password.Hash(pass), Role: role}
	if err := s.Users.Create(u); err != nil {
		// The UNIQUE constraint is the authoritative duplicate check;
		// the lookup above can lose a race with a concurrent register.
		if errors.Is(err, repos.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return &StoreError{Err: err}
	}
	return nil
}

// Login checks credentials and returns the sanitized user.
func (s *AuthService) Login(email, pass string) (*domain.PublicUser, error) {
	if email == "" || pass == "" {
		return nil, &ValidationError{Fields: map[string]string{"_": "email and password required"}}
	}
	if s.Users == nil {
		return nil, ErrMisconfigured
	}
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadCreds
		}
		return nil, &StoreError{Err: err}
	}
	if !password.Verify(u.Password, pass) {
		return nil, ErrBadCreds
	}
	pub := u.Public()
	return &pub, nil
}

// ResetPassword rehashes and stores a new password for email.
func (s *AuthService) ResetPassword(email, newPass string) error {
	fields := map[string]string{}
	if _, ok := validate.Email(email); !ok {
		fields["email"] = "a valid email address is required"
	}
	if !validate.Password(newPass) {
		fields["newPassword"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	if s.Users == nil {
		return ErrMisconfigured
	}

	if _, err := s.Users.ByEmail(email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEmailUnknown
		}
		return &StoreError{Err: err}
	}
	updated, err := s.Users.UpdatePassword(email, password.Hash(newPass))
	if err != nil {
		return &StoreError{Err: err}
	}
	if !updated {
		return ErrEmailUnknown
	}
	return nil
}
