package rbac

import "iter"

// RegistryStore is the in-memory Store implementation: user and role
// existence is tracked in two registration sets, on top of a MemoryStore
// holding the relations. Relation mutations on unregistered entities are
// rejected with a false result; registration is explicit, never implied by
// a relation write.
//
// Like MemoryStore, RegistryStore is single-owner and performs no locking.
type RegistryStore[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable] struct {
	users map[UID]struct{}
	roles map[RID]struct{}
	rel   *MemoryStore[U, R, P, UID, RID, PID]
}

// NewRegistryStore creates an empty registry store.
func NewRegistryStore[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable]() *RegistryStore[U, R, P, UID, RID, PID] {
	return &RegistryStore[U, R, P, UID, RID, PID]{
		users: make(map[UID]struct{}),
		roles: make(map[RID]struct{}),
		rel:   NewMemoryStore[U, R, P, UID, RID, PID](),
	}
}

// AddUser registers user without any roles.
func (s *RegistryStore[U, R, P, UID, RID, PID]) AddUser(user U) (bool, error) {
	uid := user.RBACID()
	if _, exists := s.users[uid]; exists {
		return false, nil
	}
	s.users[uid] = struct{}{}
	return true, nil
}

// RemoveUser unregisters user and drops its role assignments.
func (s *RegistryStore[U, R, P, UID, RID, PID]) RemoveUser(user U) (bool, error) {
	uid := user.RBACID()
	if _, exists := s.users[uid]; !exists {
		return false, nil
	}
	delete(s.users, uid)
	delete(s.rel.userRoles, uid)
	return true, nil
}

// AddRole registers role without any permissions.
func (s *RegistryStore[U, R, P, UID, RID, PID]) AddRole(role R) (bool, error) {
	rid := role.RBACID()
	if _, exists := s.roles[rid]; exists {
		return false, nil
	}
	s.roles[rid] = struct{}{}
	return true, nil
}

// RemoveRole unregisters role, revokes it from every user holding it, and
// drops its permission grants. Users left without roles have their relation
// entries pruned but stay registered.
func (s *RegistryStore[U, R, P, UID, RID, PID]) RemoveRole(role R) (bool, error) {
	rid := role.RBACID()
	if _, exists := s.roles[rid]; !exists {
		return false, nil
	}
	delete(s.roles, rid)
	delete(s.rel.rolePermissions, rid)

	for uid, roles := range s.rel.userRoles {
		delete(roles, rid)
		if len(roles) == 0 {
			delete(s.rel.userRoles, uid)
		}
	}
	return true, nil
}

// AssignRole assigns role to user. Both must be registered.
func (s *RegistryStore[U, R, P, UID, RID, PID]) AssignRole(user U, role R) (bool, error) {
	if _, ok := s.users[user.RBACID()]; !ok {
		return false, nil
	}
	if _, ok := s.roles[role.RBACID()]; !ok {
		return false, nil
	}
	return s.rel.AssignRole(user, role)
}

// UnassignRole removes role from user.
func (s *RegistryStore[U, R, P, UID, RID, PID]) UnassignRole(user U, role R) (bool, error) {
	return s.rel.UnassignRole(user, role)
}

// AddPermission grants permission to role. The role must be registered.
func (s *RegistryStore[U, R, P, UID, RID, PID]) AddPermission(role R, permission P) (bool, error) {
	if _, ok := s.roles[role.RBACID()]; !ok {
		return false, nil
	}
	return s.rel.AddPermission(role, permission)
}

// RemovePermission revokes permission from role.
func (s *RegistryStore[U, R, P, UID, RID, PID]) RemovePermission(role R, permission P) (bool, error) {
	return s.rel.RemovePermission(role, permission)
}

// UserRoleIDs enumerates the role ids assigned to user. A registered user
// without assignments still yields ErrUserHasNoRoles; registration does not
// create relation entries.
func (s *RegistryStore[U, R, P, UID, RID, PID]) UserRoleIDs(user U) (iter.Seq[RID], error) {
	return s.rel.UserRoleIDs(user)
}

// RolePermissionIDs enumerates the permission ids granted to role.
func (s *RegistryStore[U, R, P, UID, RID, PID]) RolePermissionIDs(role R) (iter.Seq[PID], error) {
	return s.rel.RolePermissionIDs(role)
}

// UserHasRole reports whether role is assigned to user.
func (s *RegistryStore[U, R, P, UID, RID, PID]) UserHasRole(user U, role R) (bool, error) {
	return s.rel.UserHasRole(user, role)
}

// RoleHasPermission reports whether permission is granted to role.
func (s *RegistryStore[U, R, P, UID, RID, PID]) RoleHasPermission(role R, permission P) (bool, error) {
	return s.rel.RoleHasPermission(role, permission)
}

// UserHasPermission reports whether any role assigned to user carries
// permission.
func (s *RegistryStore[U, R, P, UID, RID, PID]) UserHasPermission(user U, permission P) (bool, error) {
	return s.rel.UserHasPermission(user, permission)
}
