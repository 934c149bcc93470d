package rbac

import "iter"

// RelationIterators is the read capability every backing store exposes: lazy
// enumeration of the ids on the far side of each relation. The derived
// queries in this package are built entirely on top of it.
//
// Returned sequences are views over the store at the moment of the call.
// Iteration order is unspecified. Mutating the store while a sequence is
// still in use is undefined; the surrounding access discipline must keep any
// view from crossing a mutation (see SyncStore, which returns snapshots
// instead).
type RelationIterators[U Identifiable[UID], R Identifiable[RID], P Identifiable[PID], UID, RID, PID comparable] interface {
	// UserRoleIDs enumerates the ids of the roles currently assigned to
	// user. It returns ErrUserHasNoRoles when the user has no recorded
	// assignment, including users the store has never seen. Fallible
	// backends surface their own errors through the same return.
	UserRoleIDs(user U) (iter.Seq[RID], error)

	// RolePermissionIDs enumerates the ids of the permissions currently
	// granted to role, returning ErrRoleHasNoPermissions when there are
	// none recorded.
	RolePermissionIDs(role R) (iter.Seq[PID], error)
}
