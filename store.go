package rbac

// Store is the superset contract for backends that track user and role
// existence independently of the relations. Persistent backends usually
// need this: rows for users and roles exist whether or not they currently
// participate in any relation, and deleting a role must cascade. The
// bundled MemoryStore deliberately does not implement Store; RegistryStore
// does.
type Store[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable] interface {
	RelationModel[U, R, P, UID, RID, PID]

	// AddUser registers user without any roles. It reports false when the
	// user is already registered.
	AddUser(user U) (bool, error)

	// RemoveUser unregisters user and drops its role assignments. It
	// reports false when the user is unknown.
	RemoveUser(user U) (bool, error)

	// AddRole registers role without any permissions. It reports false
	// when the role is already registered.
	AddRole(role R) (bool, error)

	// RemoveRole unregisters role, revokes it from every user it is
	// assigned to, and drops its permission grants. It reports false when
	// the role is unknown.
	RemoveRole(role R) (bool, error)
}
