// Package ctxutil carries per-request identity through context.Context.
//
// Every study operation is scoped to the owner stored here; services never
// take the owner id as a parameter.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	ownerKey     struct{}
	roleKey      struct{}
	requestIDKey struct{}
)

// RoleAdmin is the role value that unlocks administrative operations.
const RoleAdmin = "admin"

// WithOwnerID returns a context scoped to the given owner.
func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, id)
}

// OwnerIDFromCtx returns the owner id and whether a usable one was set.
// uuid.Nil counts as unset.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(ownerKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithRole stores the caller's role.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromCtx returns the caller's role, or "" when unset.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}

// IsAdminCtx reports whether the caller carries RoleAdmin.
func IsAdminCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx) == RoleAdmin
}

// WithRequestID stores the request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" when unset.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
