package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func TestClaimsAuthorized(t *testing.T) {
	claims := Claims{Role: RoleOwner}

	if !claims.Authorized(RoleOwner) {
		t.Fatalf("owner must be authorized for owner routes")
	}
	if claims.Authorized("ADMIN") {
		t.Fatalf("owner must not pass an admin check")
	}
	if claims.Authorized() {
		t.Fatalf("no roles given means no match")
	}
}

func TestGetClaims(t *testing.T) {
	want := Claims{UserId: 7, Role: RoleOwner}
	ctx := context.WithValue(context.Background(), Key, want)

	got, err := GetClaims(ctx)
	if err != nil {
		t.Fatalf("get claims: %v", err)
	}
	if got.UserId != 7 || got.Role != RoleOwner {
		t.Fatalf("unexpected claims: %+v", got)
	}

	if _, err = GetClaims(context.Background()); err == nil {
		t.Fatalf("expected error for anonymous context")
	}
}

func TestValidateToken(t *testing.T) {
	a := New("test-key", nil)

	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		UserId: 7,
		Role:   RoleOwner,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.UserId != 7 || got.Role != RoleOwner {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	a := New("test-key", nil)

	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		UserId: 7,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = a.ValidateToken(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	a := New("test-key", nil)

	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
		UserId: 7,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = a.ValidateToken(token); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}
