package auth

import (
	"context"
	"errors"
)

// Principal represents the authenticated caller extracted from a bearer token.
type Principal struct {
	ID    int64  // user id, the owner key for every bookmark operation
	Email string
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

// RequirePrincipal ensures a principal is present in context.
func RequirePrincipal(ctx context.Context) (*Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return nil, errors.New("missing principal")
	}
	return p, nil
}
