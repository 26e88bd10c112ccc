// Package auth verifies bearer tokens against the identity provider.
//
// The guard reads "Authorization: Bearer <token>" and asks the configured
// TokenVerifier (OIDC in production) to validate it. All rejection reasons
// collapse into a single unauthenticated outcome; the underlying cause is
// only visible in debug logs.
package auth
