package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pawtag/order-service/pkg/utils"
)

const RoleAdmin = "admin"

type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// User is the authenticated caller.
type User struct {
	ID   string
	Role string
}

type userKey struct{}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}

var errMissingToken = errors.New("missing bearer token")

// Auth verifies an HS256 bearer token and puts its subject into the request
// context. Requests without a valid token are answered with 401.
func Auth(logger *slog.Logger, secret []byte, issuer string) func(next http.Handler) http.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				utils.WriteKindError(w, "unauthorized", err.Error(), nil, http.StatusUnauthorized)
				return
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				logger.DebugContext(r.Context(), "rejected token", slog.Any("error", err))
				utils.WriteKindError(w, "unauthorized", "invalid token", nil, http.StatusUnauthorized)
				return
			}
			if claims.Subject == "" {
				utils.WriteKindError(w, "unauthorized", "token has no subject", nil, http.StatusUnauthorized)
				return
			}

			ctx := WithUser(r.Context(), User{ID: claims.Subject, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				utils.WriteKindError(w, "unauthorized", "authentication required", nil, http.StatusUnauthorized)
				return
			}
			if u.Role != role {
				utils.WriteKindError(w, "forbidden", "insufficient role", nil, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(token), nil
}
