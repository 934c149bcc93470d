package rbac

import (
	"iter"
	"slices"
	"sync"
)

// SyncStore makes a single-owner RelationModel safe for concurrent use by
// serializing every mutation behind a write lock and every query behind a
// read lock. Iteration collects an owned snapshot under the read lock, so a
// returned sequence stays valid across later mutations, unlike the live
// views of the wrapped store.
type SyncStore[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable] struct {
	mu    sync.RWMutex
	store RelationModel[U, R, P, UID, RID, PID]
}

// NewSyncStore wraps store for concurrent use. The wrapped store must not
// be used directly afterwards.
func NewSyncStore[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable](
	store RelationModel[U, R, P, UID, RID, PID],
) *SyncStore[U, R, P, UID, RID, PID] {
	return &SyncStore[U, R, P, UID, RID, PID]{store: store}
}

// UserRoleIDs returns a snapshot of the ids of the roles assigned to user.
func (s *SyncStore[U, R, P, UID, RID, PID]) UserRoleIDs(user U) (iter.Seq[RID], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.store.UserRoleIDs(user)
	if err != nil {
		return nil, err
	}
	return slices.Values(slices.Collect(ids)), nil
}

// RolePermissionIDs returns a snapshot of the ids of the permissions
// granted to role.
func (s *SyncStore[U, R, P, UID, RID, PID]) RolePermissionIDs(role R) (iter.Seq[PID], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.store.RolePermissionIDs(role)
	if err != nil {
		return nil, err
	}
	return slices.Values(slices.Collect(ids)), nil
}

// AssignRole assigns role to user.
func (s *SyncStore[U, R, P, UID, RID, PID]) AssignRole(user U, role R) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AssignRole(user, role)
}

// UnassignRole removes role from user.
func (s *SyncStore[U, R, P, UID, RID, PID]) UnassignRole(user U, role R) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.UnassignRole(user, role)
}

// AddPermission grants permission to role.
func (s *SyncStore[U, R, P, UID, RID, PID]) AddPermission(role R, permission P) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AddPermission(role, permission)
}

// RemovePermission revokes permission from role.
func (s *SyncStore[U, R, P, UID, RID, PID]) RemovePermission(role R, permission P) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RemovePermission(role, permission)
}

// UserHasRole reports whether role is assigned to user.
func (s *SyncStore[U, R, P, UID, RID, PID]) UserHasRole(user U, role R) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.UserHasRole(user, role)
}

// RoleHasPermission reports whether permission is granted to role.
func (s *SyncStore[U, R, P, UID, RID, PID]) RoleHasPermission(role R, permission P) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.RoleHasPermission(role, permission)
}

// UserHasPermission reports whether any role assigned to user carries
// permission.
func (s *SyncStore[U, R, P, UID, RID, PID]) UserHasPermission(user U, permission P) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.UserHasPermission(user, permission)
}
