package credentials

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, missing or elapsed expiry. Callers must not
// learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified payload of a bearer token.
type Claims struct {
	UserID int64
	Role   domain.Role
}

type tokenClaims struct {
	UserID int64       `json:"id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies bearer tokens. It holds no mutable state and is
// safe for concurrent use.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces an HS256-signed token embedding the user id and role with
// an absolute expiry of now+ttl.
func (i *Issuer) Issue(userID int64, role domain.Role) (string, error) {
	return i.IssueWithTTL(userID, role, i.ttl)
}

// IssueWithTTL is Issue with an explicit lifetime. A zero or negative ttl
// yields a token that is already expired.
func (i *Issuer) IssueWithTTL(userID int64, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// Every failure maps to ErrInvalidToken.
func (i *Issuer) Verify(token string) (Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return Claims{}, ErrInvalidToken
	}
	return Claims{UserID: claims.UserID, Role: claims.Role}, nil
}
