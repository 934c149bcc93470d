package rbac

import (
	"iter"
	"maps"
)

// MemoryStore is the reference RelationModel implementation: two map-of-set
// relations and nothing else. Entries are created lazily on the first
// assignment or grant and pruned the moment their set empties, so a key is
// present iff its set is non-empty. That invariant is what makes "has no
// roles" and "user not found" indistinguishable, as the error taxonomy
// requires.
//
// MemoryStore is single-owner: it performs no locking and must not be shared
// between goroutines without external synchronization (see SyncStore).
type MemoryStore[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable] struct {
	userRoles       map[UID]map[RID]struct{}
	rolePermissions map[RID]map[PID]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable]() *MemoryStore[U, R, P, UID, RID, PID] {
	return &MemoryStore[U, R, P, UID, RID, PID]{
		userRoles:       make(map[UID]map[RID]struct{}),
		rolePermissions: make(map[RID]map[PID]struct{}),
	}
}

// UserRoleIDs returns a live view over the ids of the roles assigned to
// user, or ErrUserHasNoRoles when there are none recorded. The view is only
// valid until the next mutation.
func (s *MemoryStore[U, R, P, UID, RID, PID]) UserRoleIDs(user U) (iter.Seq[RID], error) {
	roles, ok := s.userRoles[user.RBACID()]
	if !ok {
		return nil, ErrUserHasNoRoles
	}
	return maps.Keys(roles), nil
}

// RolePermissionIDs returns a live view over the ids of the permissions
// granted to role, or ErrRoleHasNoPermissions when there are none recorded.
func (s *MemoryStore[U, R, P, UID, RID, PID]) RolePermissionIDs(role R) (iter.Seq[PID], error) {
	perms, ok := s.rolePermissions[role.RBACID()]
	if !ok {
		return nil, ErrRoleHasNoPermissions
	}
	return maps.Keys(perms), nil
}

// AssignRole assigns role to user, creating the user's entry on first use.
// It reports false when the role was already assigned.
func (s *MemoryStore[U, R, P, UID, RID, PID]) AssignRole(user U, role R) (bool, error) {
	uid := user.RBACID()
	roles, ok := s.userRoles[uid]
	if !ok {
		roles = make(map[RID]struct{})
		s.userRoles[uid] = roles
	}

	rid := role.RBACID()
	if _, exists := roles[rid]; exists {
		return false, nil
	}
	roles[rid] = struct{}{}
	return true, nil
}

// UnassignRole removes role from user, pruning the user's entry entirely
// when its last role goes. It reports false when the user is unknown or the
// role was not assigned.
func (s *MemoryStore[U, R, P, UID, RID, PID]) UnassignRole(user U, role R) (bool, error) {
	uid := user.RBACID()
	roles, ok := s.userRoles[uid]
	if !ok {
		return false, nil
	}

	rid := role.RBACID()
	if _, exists := roles[rid]; !exists {
		return false, nil
	}
	delete(roles, rid)
	if len(roles) == 0 {
		delete(s.userRoles, uid)
	}
	return true, nil
}

// AddPermission grants permission to role, creating the role's entry on
// first use. It reports false when the permission was already granted.
func (s *MemoryStore[U, R, P, UID, RID, PID]) AddPermission(role R, permission P) (bool, error) {
	rid := role.RBACID()
	perms, ok := s.rolePermissions[rid]
	if !ok {
		perms = make(map[PID]struct{})
		s.rolePermissions[rid] = perms
	}

	pid := permission.RBACID()
	if _, exists := perms[pid]; exists {
		return false, nil
	}
	perms[pid] = struct{}{}
	return true, nil
}

// RemovePermission revokes permission from role, pruning the role's entry
// entirely when its last permission goes. It reports false when the role is
// unknown or the permission was not granted.
func (s *MemoryStore[U, R, P, UID, RID, PID]) RemovePermission(role R, permission P) (bool, error) {
	rid := role.RBACID()
	perms, ok := s.rolePermissions[rid]
	if !ok {
		return false, nil
	}

	pid := permission.RBACID()
	if _, exists := perms[pid]; !exists {
		return false, nil
	}
	delete(perms, pid)
	if len(perms) == 0 {
		delete(s.rolePermissions, rid)
	}
	return true, nil
}

// UserHasRole reports whether role is assigned to user.
func (s *MemoryStore[U, R, P, UID, RID, PID]) UserHasRole(user U, role R) (bool, error) {
	return UserHasRole[U, R, P, UID, RID, PID](s, user, role)
}

// RoleHasPermission reports whether permission is granted to role.
func (s *MemoryStore[U, R, P, UID, RID, PID]) RoleHasPermission(role R, permission P) (bool, error) {
	return RoleHasPermission[U, R, P, UID, RID, PID](s, role, permission)
}

// UserHasPermission reports whether any role assigned to user carries
// permission. It walks the maps directly and stops at the first matching
// role. The outcome is purely existential; which role matches does not
// affect the result.
func (s *MemoryStore[U, R, P, UID, RID, PID]) UserHasPermission(user U, permission P) (bool, error) {
	roles, ok := s.userRoles[user.RBACID()]
	if !ok {
		return false, nil
	}

	pid := permission.RBACID()
	for rid := range roles {
		if perms, ok := s.rolePermissions[rid]; ok {
			if _, granted := perms[pid]; granted {
				return true, nil
			}
		}
	}
	return false, nil
}
