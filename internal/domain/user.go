package domain

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"` // "saltHex:hashHex", write-only from the API's perspective
	Role     string `db:"role"`
}

// PublicUser is the shape handed back to clients: password stripped,
// Name always populated, plus a convenience admin flag.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Username,
		Email:    u.Email,
		Role:     u.Role,
		IsAdmin:  u.Role == RoleAdmin,
	}
}
