package models

import "time"

type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Password            string     `json:"-"`
	Role                Role       `json:"role"`
	UserWithEmpID       string     `json:"userwithempid"`
	Department          string     `json:"department,omitempty"`
	Position            string     `json:"position,omitempty"`
	Status              UserStatus `json:"status"`
	ForcePasswordChange bool       `json:"force_password_change"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
}

// Caller is the authenticated identity threaded explicitly through every
// handler and query builder. TeamKey is the caller's "Name - EmpID" string
// matched against the collaboration columns for row-level visibility; it
// is a weak lookup key, not a foreign key, and an empty value simply means
// the caller only sees records they submitted.
type Caller struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	TeamKey string `json:"teamkey"`
}

// FullAccess reports whether the caller sees and edits every record.
func (c Caller) FullAccess() bool {
	return c.Role == RoleAdmin || c.Role == RoleContracts
}
