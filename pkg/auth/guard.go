package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/skinpoint/cms/pkg/observability"
)

// Result is the outcome of one verification attempt. Every failure mode
// (missing header, malformed header, expired or invalid token, identity
// service unreachable) collapses into Authenticated == false; callers
// branch on the flag, never on an error.
type Result struct {
	Authenticated bool
	UID           string
}

// Guard extracts and verifies bearer tokens on incoming requests.
type Guard struct {
	verifier TokenVerifier
	logger   *observability.Logger
}

// NewGuard creates a guard around a token verifier.
func NewGuard(verifier TokenVerifier, logger *observability.Logger) *Guard {
	return &Guard{verifier: verifier, logger: logger}
}

// Verify reads the Authorization header from the request and checks the
// token with the identity service. It never returns an error; rejection
// reasons are logged at debug level only.
func (g *Guard) Verify(r *http.Request) Result {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Result{}
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		g.logger.Debug("malformed authorization header")
		return Result{}
	}

	uid, err := g.verifier.VerifyToken(r.Context(), parts[1])
	if err != nil {
		g.logger.WithError(err).Debug("token verification failed")
		return Result{}
	}
	return Result{Authenticated: true, UID: uid}
}

type contextKey struct{}

// identityKey stores the verified Result in a request context.
var identityKey = contextKey{}

// Middleware rejects unauthenticated requests with a 401 JSON envelope and
// stores the verified identity in the request context for handlers.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := g.Verify(r)
		if !res.Authenticated {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), res)))
	})
}

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, res Result) context.Context {
	return context.WithValue(ctx, identityKey, res)
}

// FromContext extracts the verified identity, if any.
func FromContext(ctx context.Context) (Result, bool) {
	res, ok := ctx.Value(identityKey).(Result)
	return res, ok && res.Authenticated
}
