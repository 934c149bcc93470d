package rbac

import "context"

// userCtxKey keys the context value by principal type, so principals of
// different types stored in the same context never collide.
type userCtxKey[U any] struct{}

// SetUserToContext stores the authenticated principal in the context.
func SetUserToContext[U any](ctx context.Context, user U) context.Context {
	return context.WithValue(ctx, userCtxKey[U]{}, user)
}

// GetUserFromContext retrieves the principal of type U from the context.
// The second return value is false when none was stored.
func GetUserFromContext[U any](ctx context.Context) (U, bool) {
	user, ok := ctx.Value(userCtxKey[U]{}).(U)
	if !ok {
		var zero U
		return zero, false
	}
	return user, true
}
