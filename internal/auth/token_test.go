package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	key, err := NewSigningKey()
	if err != nil {
		t.Fatalf("NewSigningKey: %v", err)
	}
	return NewCodec(key)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	cases := []struct {
		subject string
		userID  int64
		roles   []string
	}{
		{"u@example.com", 1, []string{"USER"}},
		{"admin@example.com", 42, []string{"USER", "ADMIN"}},
		{"nobody@example.com", 7, nil},
	}
	for _, tc := range cases {
		token, err := codec.Issue(tc.subject, tc.userID, tc.roles)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		claims, err := codec.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if claims.Subject != tc.subject || claims.UserID != tc.userID {
			t.Fatalf("claims = %+v, want subject %q userID %d", claims, tc.subject, tc.userID)
		}
		if !reflect.DeepEqual(claims.Roles, normalizeRoles(tc.roles)) {
			t.Fatalf("roles = %v, want %v", claims.Roles, normalizeRoles(tc.roles))
		}
		if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != TokenTTL {
			t.Fatalf("ttl = %v, want %v", got, TokenTTL)
		}
	}
}

func TestTokenWireFormat(t *testing.T) {
	codec := newTestCodec(t)
	token, err := codec.Issue("u@example.com", 5, []string{"USER"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("payload not base64url: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	for _, k := range []string{"sub", "userId", "roles", "iat", "exp"} {
		if _, ok := payload[k]; !ok {
			t.Fatalf("payload missing %q: %v", k, payload)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	codec := newTestCodec(t)
	codec.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }
	token, err := codec.Issue("u@example.com", 1, []string{"USER"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	codec.now = time.Now
	if _, err := codec.Verify(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestCodec(t)
	verifier := newTestCodec(t)

	token, err := issuer.Issue("u@example.com", 1, []string{"USER"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	codec := newTestCodec(t)
	token, _ := codec.Issue("u@example.com", 1, []string{"USER"})
	parts := strings.Split(token, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"u@example.com","userId":1,"roles":["ADMIN"],"exp":4102444800}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	if _, err := codec.Verify(tampered); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	codec := newTestCodec(t)
	for _, s := range []string{"", "abc", "a.b", "a.b.c.d", "!!!.@@@.###"} {
		if _, err := codec.Verify(s); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Verify(%q): expected ErrMalformed, got %v", s, err)
		}
	}
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	codec := newTestCodec(t)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":    "u@example.com",
		"userId": 1,
		"roles":  []string{"ADMIN"},
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := codec.Verify(signed); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for alg=none, got %v", err)
	}
}

func TestVerifyRequiresExpiry(t *testing.T) {
	codec := newTestCodec(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "u@example.com",
		"userId": 1,
		"roles":  []string{"USER"},
	})
	signed, _ := token.SignedString(codec.key)
	if _, err := codec.Verify(signed); err == nil {
		t.Fatalf("token without exp must be rejected")
	}
}

func TestVerifyAcceptsAuthorityObjectRoles(t *testing.T) {
	codec := newTestCodec(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "legacy@example.com",
		"userId": 9,
		"roles":  []any{map[string]string{"authority": "ADMIN"}, "USER"},
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(codec.key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !reflect.DeepEqual(claims.Roles, []string{"ADMIN", "USER"}) {
		t.Fatalf("roles = %v, want [ADMIN USER]", claims.Roles)
	}
	if claims.UserID != 9 {
		t.Fatalf("userID = %d, want 9", claims.UserID)
	}
}

func TestRoleListRejectsUnknownShape(t *testing.T) {
	var r roleList
	if err := json.Unmarshal([]byte(`[{"name":"ADMIN"}]`), &r); err == nil {
		t.Fatalf("object without authority must be rejected")
	}
	if err := json.Unmarshal([]byte(`"ADMIN"`), &r); err == nil {
		t.Fatalf("non-array roles must be rejected")
	}
}

func TestClaimsPrincipal(t *testing.T) {
	p := Claims{Subject: "u@example.com", UserID: 3, Roles: []string{"USER", "USER"}}.Principal()
	if p.Subject() != "u@example.com" || p.UserID() != 3 {
		t.Fatalf("unexpected principal %+v", p)
	}
	if roles := p.Roles(); len(roles) != 1 || roles[0] != "USER" {
		t.Fatalf("roles should be a set, got %v", roles)
	}
}
