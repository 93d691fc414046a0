package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/apperrors"
)

// TenantClaims are the claims carried by both the visitor bearer token and
// the elevated token in the HMAC exchange.
type TenantClaims struct {
	TenantID string `json:"tenantId"`
	Scope    string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// HMACResolver implements the token exchange with an app-level shared
// secret. The visitor bearer is an HS256 token signed by the host platform
// with the same secret; elevation mints a fresh token with a data-write
// scope. Used when no Firebase credentials are configured.
type HMACResolver struct {
	appSecret string
	tokenTTL  time.Duration
}

// NewHMACResolver creates an HMACResolver. The app secret is the tenant
// configuration required for elevation; it may be empty here, in which case
// every exchange fails with an AuthError.
func NewHMACResolver(appSecret string) *HMACResolver {
	return &HMACResolver{
		appSecret: appSecret,
		tokenTTL:  5 * time.Minute,
	}
}

// ResolveTenant verifies the bearer token against the app secret and
// extracts the tenant id claim.
func (r *HMACResolver) ResolveTenant(ctx context.Context, bearer string) (string, error) {
	if r.appSecret == "" {
		return "", apperrors.NewAuth(fmt.Errorf("app secret not configured"))
	}

	claims := &TenantClaims{}
	token, err := jwt.ParseWithClaims(bearer, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(r.appSecret), nil
	})
	if err != nil {
		return "", apperrors.NewAuth(err)
	}
	if !token.Valid {
		return "", apperrors.NewAuth(fmt.Errorf("invalid bearer token"))
	}
	if claims.TenantID == "" {
		return "", apperrors.NewAuth(fmt.Errorf("bearer token carries no tenant id"))
	}

	return claims.TenantID, nil
}

// Elevate signs a short-lived data-write token for the tenant.
func (r *HMACResolver) Elevate(ctx context.Context, tenantID string) (ScopedCredential, error) {
	if r.appSecret == "" {
		return ScopedCredential{}, apperrors.NewAuth(fmt.Errorf("app secret not configured"))
	}
	if tenantID == "" {
		return ScopedCredential{}, apperrors.NewAuth(fmt.Errorf("empty tenant id"))
	}

	claims := &TenantClaims{
		TenantID: tenantID,
		Scope:    "data.write",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(r.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(r.appSecret))
	if err != nil {
		return ScopedCredential{}, apperrors.NewAuth(err)
	}

	return ScopedCredential{TenantID: tenantID, Token: signed}, nil
}
