// Package rbac provides a minimal, embeddable role-based access control
// model. It tracks which roles are assigned to which users and which
// permissions are granted to which roles, and answers permission checks by
// composing the two relations.
//
// The package is storage-agnostic: entity types stay opaque and only their
// ids are ever stored. Any backing store (in-memory, database-backed,
// remote) plugs into the model by satisfying the capability contracts.
//
// Key concepts:
//
//   - Identifiable: any user, role, or permission type that can produce a
//     canonical comparable id
//   - RelationIterators: a backend's ability to enumerate the role ids of a
//     user and the permission ids of a role
//   - RelationModel: the full mutation and query contract layered on top of
//     iteration
//   - MemoryStore: the bundled reference implementation backed by two
//     map-of-set relations
//
// Basic usage:
//
//	type User struct{ ID uint32 }
//
//	func (u User) RBACID() uint32 { return u.ID }
//
//	// Role and Permission implement Identifiable the same way.
//
//	store := rbac.NewMemoryStore[User, Role, Permission, uint32, uint32, uint32]()
//
//	store.AssignRole(alice, admin)
//	store.AddPermission(admin, deploy)
//
//	ok, _ := store.UserHasPermission(alice, deploy) // true
//
// Boolean checks never fail on unknown entities: a user that was never
// assigned a role simply has no permissions. Only direct iteration reports
// "no relation recorded", via ErrUserHasNoRoles and ErrRoleHasNoPermissions.
//
// MemoryStore is single-owner and performs no locking. Wrap it in a
// SyncStore when the model is shared between goroutines:
//
//	shared := rbac.NewSyncStore[User, Role, Permission, uint32, uint32, uint32](store)
//
// Backends that track user and role existence independently of the
// relations (persistent stores typically do) implement the Store contract;
// RegistryStore is the bundled in-memory implementation of it.
package rbac
