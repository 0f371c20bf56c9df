package domain

import "time"

// Role is the authorization role carried in a user record and in token claims.
type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleHRManager  Role = "HR_MANAGER"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleHRManager, RoleSuperAdmin:
		return true
	}
	return false
}

// User models an authenticated actor. Employees are user records too: the
// employee endpoints operate on the same table, joined with departments.
type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	DepartmentID int64       `json:"departmentId"`
	Department   *Department `json:"department,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Identity is the projection of a verified token attached to a request.
// It is built fresh per request and never persisted.
type Identity struct {
	ID   int64
	Role Role
}
