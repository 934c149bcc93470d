package rbac

import "errors"

// Domain errors for RBAC operations.
var (
	// ErrUserHasNoRoles is returned by role iteration when a user has no
	// recorded role assignment, not even one.
	ErrUserHasNoRoles = errors.New("rbac.user_has_no_roles")

	// ErrRoleHasNoPermissions is returned by permission iteration when a
	// role has no recorded permission grant, not even one.
	ErrRoleHasNoPermissions = errors.New("rbac.role_has_no_permissions")
)
