package identity

import "context"

// ScopedCredential is the elevated, backend-only credential obtained by
// exchanging a tenant id. It grants write access to that tenant's slice of
// the data store; repositories refuse to operate without one.
type ScopedCredential struct {
	TenantID string
	Token    string
}

// Resolver is the token-exchange capability. Both operations are remote
// calls and fail independently; failures surface immediately as AuthErrors
// with no retry.
type Resolver interface {
	// ResolveTenant exchanges a caller-supplied bearer credential for the
	// tenant id it belongs to.
	ResolveTenant(ctx context.Context, bearer string) (string, error)

	// Elevate exchanges a tenant id for a credential scoped to that
	// tenant's data store.
	Elevate(ctx context.Context, tenantID string) (ScopedCredential, error)
}
