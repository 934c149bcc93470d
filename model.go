package rbac

// RelationModel is the public contract of the authorization model: the
// relation mutations plus the derived boolean queries. All operations
// return (bool, error) uniformly so fallible backends (database-backed,
// remote) can surface I/O failures through the same signatures; the bundled
// in-memory stores never return an error from any of them.
type RelationModel[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable] interface {
	RelationIterators[U, R, P, UID, RID, PID]

	// AssignRole assigns role to user. It reports true for a new
	// assignment and false when the role was already assigned.
	AssignRole(user U, role R) (bool, error)

	// UnassignRole removes role from user. It reports false when the user
	// is unknown or the role was not assigned.
	UnassignRole(user U, role R) (bool, error)

	// AddPermission grants permission to role. It reports true for a new
	// grant and false when the permission was already granted.
	AddPermission(role R, permission P) (bool, error)

	// RemovePermission revokes permission from role. It reports false when
	// the role is unknown or the permission was not granted.
	RemovePermission(role R, permission P) (bool, error)

	// UserHasRole reports whether role is assigned to user. A user with no
	// roles yields false, never an error.
	UserHasRole(user U, role R) (bool, error)

	// RoleHasPermission reports whether permission is granted to role.
	RoleHasPermission(role R, permission P) (bool, error)

	// UserHasPermission reports whether any role assigned to user carries
	// permission. A user with no roles, or whose roles all lack the
	// permission, yields false, never an error.
	UserHasPermission(user U, permission P) (bool, error)
}

// UserHasRole is the shared derivation of RelationModel.UserHasRole: any
// backend satisfying RelationIterators gets it for free. Iteration failures,
// including ErrUserHasNoRoles, fold into a false result.
func UserHasRole[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable](
	src RelationIterators[U, R, P, UID, RID, PID], user U, role R,
) (bool, error) {
	ids, err := src.UserRoleIDs(user)
	if err != nil {
		return false, nil
	}

	want := role.RBACID()
	for id := range ids {
		if id == want {
			return true, nil
		}
	}
	return false, nil
}

// RoleHasPermission is the shared derivation of
// RelationModel.RoleHasPermission over the iteration capability. Iteration
// failures fold into a false result.
func RoleHasPermission[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable](
	src RelationIterators[U, R, P, UID, RID, PID], role R, permission P,
) (bool, error) {
	ids, err := src.RolePermissionIDs(role)
	if err != nil {
		return false, nil
	}

	want := permission.RBACID()
	for id := range ids {
		if id == want {
			return true, nil
		}
	}
	return false, nil
}
