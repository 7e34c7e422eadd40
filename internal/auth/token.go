package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is fixed; tokens have no other revocation mechanism.
const TokenTTL = 24 * time.Hour

var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// Claims is the decoded token payload.
type Claims struct {
	Subject   string
	UserID    int64
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal builds the request identity from verified claims.
func (c Claims) Principal() *Principal {
	return NewPrincipal(c.Subject, c.UserID, c.Roles)
}

type tokenClaims struct {
	UserID int64    `json:"userId"`
	Roles  roleList `json:"roles"`
	jwt.RegisteredClaims
}

// roleList decodes either ["USER"] or [{"authority":"USER"}].
type roleList []string

func (r *roleList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, name)
			continue
		}
		var obj struct {
			Authority *string `json:"authority"`
		}
		if err := json.Unmarshal(item, &obj); err != nil || obj.Authority == nil {
			return fmt.Errorf("unsupported role claim %s", string(item))
		}
		out = append(out, *obj.Authority)
	}
	*r = out
	return nil
}

// Codec issues and verifies HS256 bearer tokens under one key.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewCodec(key []byte) *Codec {
	return &Codec{key: key, ttl: TokenTTL, now: time.Now}
}

// Issue signs a token valid for TokenTTL from now.
func (c *Codec) Issue(subject string, userID int64, roles []string) (string, error) {
	now := c.now()
	claims := tokenClaims{
		UserID: userID,
		Roles:  roleList(normalizeRoles(roles)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks structure, signature and expiry. Errors wrap ErrMalformed,
// ErrInvalidSignature or ErrExpired.
func (c *Codec) Verify(tokenString string) (Claims, error) {
	var tc tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &tc,
		func(*jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, fmt.Errorf("%w: %v", ErrExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	out := Claims{
		Subject: tc.Subject,
		UserID:  tc.UserID,
		Roles:   normalizeRoles(tc.Roles),
	}
	if tc.IssuedAt != nil {
		out.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		out.ExpiresAt = tc.ExpiresAt.Time
	}
	return out, nil
}
