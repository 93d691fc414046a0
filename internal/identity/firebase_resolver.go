package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/apperrors"
)

// FirebaseResolver implements the token exchange against Firebase Auth. The
// visitor bearer is a Firebase ID token whose claims carry the tenant id;
// elevation mints a custom token for the tenant, signed with the service
// account configured at startup.
type FirebaseResolver struct {
	authClient *auth.Client
}

// NewFirebaseResolver creates a FirebaseResolver around an initialized auth
// client.
func NewFirebaseResolver(authClient *auth.Client) *FirebaseResolver {
	return &FirebaseResolver{authClient: authClient}
}

// ResolveTenant verifies the bearer ID token and extracts the tenantId claim.
func (r *FirebaseResolver) ResolveTenant(ctx context.Context, bearer string) (string, error) {
	token, err := r.authClient.VerifyIDToken(ctx, bearer)
	if err != nil {
		return "", apperrors.NewAuth(fmt.Errorf("invalid or expired ID token: %w", err))
	}

	tenantID, ok := token.Claims["tenantId"].(string)
	if !ok || tenantID == "" {
		return "", apperrors.NewAuth(fmt.Errorf("ID token carries no tenant id"))
	}

	return tenantID, nil
}

// Elevate mints a custom token scoped to the tenant's data store.
func (r *FirebaseResolver) Elevate(ctx context.Context, tenantID string) (ScopedCredential, error) {
	if tenantID == "" {
		return ScopedCredential{}, apperrors.NewAuth(fmt.Errorf("empty tenant id"))
	}

	token, err := r.authClient.CustomTokenWithClaims(ctx, tenantID, map[string]interface{}{
		"scope": "data.write",
	})
	if err != nil {
		return ScopedCredential{}, apperrors.NewAuth(fmt.Errorf("custom token exchange failed: %w", err))
	}

	return ScopedCredential{TenantID: tenantID, Token: token}, nil
}
