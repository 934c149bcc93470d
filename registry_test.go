package rbac_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rbac"
)

type regStore = rbac.RegistryStore[testUser, testRole, testPermission, uint32, uint32, uint32]

func newRegistryStore(t *testing.T) *regStore {
	t.Helper()

	store := rbac.NewRegistryStore[testUser, testRole, testPermission, uint32, uint32, uint32]()

	for _, u := range []testUser{gandalf, sam, frodo} {
		ok, err := store.AddUser(u)
		require.NoError(t, err)
		require.True(t, ok)
	}
	for _, r := range []testRole{agent, salesperson, administrator} {
		ok, err := store.AddRole(r)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, a := range []struct {
		user testUser
		role testRole
	}{
		{gandalf, administrator},
		{sam, agent},
		{sam, salesperson},
	} {
		ok, err := store.AssignRole(a.user, a.role)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, g := range []struct {
		role testRole
		perm testPermission
	}{
		{agent, makeCalls},
		{salesperson, generateForm},
		{administrator, alterState},
	} {
		ok, err := store.AddPermission(g.role, g.perm)
		require.NoError(t, err)
		require.True(t, ok)
	}

	return store
}

func TestRegistryStore_AddUser(t *testing.T) {
	t.Parallel()

	store := newRegistryStore(t)

	t.Run("new user", func(t *testing.T) {
		ok, err := store.AddUser(legolas)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("already registered", func(t *testing.T) {
		ok, err := store.AddUser(gandalf)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegistryStore_RemoveUser(t *testing.T) {
	t.Parallel()

	store := newRegistryStore(t)

	t.Run("unknown user", func(t *testing.T) {
		ok, err := store.RemoveUser(legolas)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("removal drops assignments", func(t *testing.T) {
		ok, err := store.RemoveUser(sam)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = store.UserRoleIDs(sam)
		assert.True(t, errors.Is(err, rbac.ErrUserHasNoRoles))

		// Re-registering starts from a clean slate.
		ok, err = store.AddUser(sam)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.UserHasRole(sam, agent)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestRegistryStore_UnregisteredMutations(t *testing.T) {
	t.Parallel()

	store := newRegistryStore(t)

	t.Run("assign to unknown user", func(t *testing.T) {
		ok, err := store.AssignRole(legolas, agent)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("assign unknown role", func(t *testing.T) {
		ok, err := store.AssignRole(gandalf, supervisor)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("grant to unknown role", func(t *testing.T) {
		ok, err := store.AddPermission(supervisor, makeCalls)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegistryStore_RemoveRoleCascades(t *testing.T) {
	t.Parallel()

	store := newRegistryStore(t)

	ok, err := store.RemoveRole(administrator)
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("role is gone", func(t *testing.T) {
		ok, err := store.RemoveRole(administrator)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = store.RolePermissionIDs(administrator)
		assert.True(t, errors.Is(err, rbac.ErrRoleHasNoPermissions))
	})

	t.Run("revoked from every user", func(t *testing.T) {
		got, err := store.UserHasRole(gandalf, administrator)
		require.NoError(t, err)
		assert.False(t, got)

		// administrator was gandalf's only role.
		_, err = store.UserRoleIDs(gandalf)
		assert.True(t, errors.Is(err, rbac.ErrUserHasNoRoles))
	})

	t.Run("users stay registered", func(t *testing.T) {
		ok, err := store.AddUser(gandalf)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("permission checks fold to false", func(t *testing.T) {
		got, err := store.UserHasPermission(gandalf, alterState)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("other assignments survive", func(t *testing.T) {
		got, err := store.UserHasRole(sam, agent)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = store.UserHasPermission(sam, makeCalls)
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestRegistryStore_RelationSemantics(t *testing.T) {
	t.Parallel()

	store := newRegistryStore(t)

	t.Run("registered user without roles", func(t *testing.T) {
		_, err := store.UserRoleIDs(frodo)
		assert.True(t, errors.Is(err, rbac.ErrUserHasNoRoles))

		got, err := store.UserHasPermission(frodo, makeCalls)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("idempotent assignment", func(t *testing.T) {
		ok, err := store.AssignRole(sam, agent)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unassign prunes the relation entry", func(t *testing.T) {
		ok, err := store.UnassignRole(gandalf, administrator)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = store.UserRoleIDs(gandalf)
		assert.True(t, errors.Is(err, rbac.ErrUserHasNoRoles))
	})
}
