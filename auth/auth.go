package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the signed assertion a bearer token carries: the account number
// and display name of the authenticated customer.
type Claims struct {
	AccNo string `json:"accNo"`
	Name  string `json:"name"`
	jwt.StandardClaims
}

type contextKey struct{}

var claimsKey contextKey

// Gate issues and verifies bearer credentials and recognizes the single
// administrator identity. The signing secret and admin account number are
// injected from configuration, never baked in.
type Gate struct {
	secret     []byte
	ttl        time.Duration
	adminAccNo string
}

func NewGate(secret string, ttl time.Duration, adminAccNo string) *Gate {
	return &Gate{secret: []byte(secret), ttl: ttl, adminAccNo: adminAccNo}
}

// IssueToken signs a credential for the given identity with the gate's
// fixed expiry.
func (g *Gate) IssueToken(accNo, name string) (string, error) {
	claims := &Claims{
		AccNo: accNo,
		Name:  name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(g.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// ParseToken verifies a credential and returns its claims. Malformed,
// expired and mis-signed tokens all come back as an error.
func (g *Gate) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return g.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}
	return claims, nil
}

// IsAdmin reports whether the claims belong to the administrator. The admin
// is recognized purely by the reserved account number, there is no separate
// role claim.
func (g *Gate) IsAdmin(claims *Claims) bool {
	return claims.AccNo == g.adminAccNo
}

// VerifyToken is middleware that rejects requests without a valid bearer
// credential and stores the claims in the request context.
func (g *Gate) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Authorization token required", http.StatusUnauthorized)
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		if tokenString == "" {
			http.Error(w, "Authorization token required", http.StatusUnauthorized)
			return
		}

		claims, err := g.ParseToken(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is middleware for the admin surface; it must run after
// VerifyToken.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || !g.IsAdmin(claims) {
			http.Error(w, "Not an admin", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFrom returns the claims VerifyToken stored, or nil outside an
// authenticated request.
func ClaimsFrom(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// HashSecret digests a login password or transaction PIN with bcrypt.
// Secrets are never stored or compared in clear.
func HashSecret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifySecret reports whether secret matches a digest produced by
// HashSecret.
func VerifySecret(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
