package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")

	ErrAssetNotFound      = errors.New("asset not found")
	ErrSerialNumberExists = errors.New("serial number already exists")

	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")

	// ErrRoleAssignment is returned when an actor tries to grant a role
	// only a super admin may grant.
	ErrRoleAssignment = errors.New("cannot assign restricted roles")
)
