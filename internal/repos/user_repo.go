package repos

import (
	"errors"
	"strings"

	"learnhub/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateEmail is returned by Create when the email is already
// taken. The UNIQUE constraint on users.email is authoritative, so a
// register that races a prior existence check still lands here.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,email,password,role FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and assigns its id.
func (r *UserRepo) Create(u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.DB.Exec(`INSERT INTO users(id,username,email,password,role) VALUES(?,?,?,?,?)`,
		u.ID, u.Username, u.Email, u.Password, u.Role)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateEmail
	}
	return err
}

// UpdatePassword replaces the stored hash for email. The bool reports
// whether a row was actually updated.
func (r *UserRepo) UpdatePassword(email, hashed string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE users SET password=?, updated_at=CURRENT_TIMESTAMP WHERE LOWER(email)=LOWER(?)`, hashed, email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepo) List(limit int) ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT id,username,email,password,role FROM users ORDER BY created_at DESC LIMIT ?`, limit)
	return out, err
}
