package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCheckNotExpired(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	t.Run("expired jwt is rejected", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
		if err := CheckNotExpired(tok, now); err != ErrTokenExpired {
			t.Fatalf("err = %v, want ErrTokenExpired", err)
		}
	})

	t.Run("valid jwt passes", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		if err := CheckNotExpired(tok, now); err != nil {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("jwt without exp passes", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"sub": "x"})
		if err := CheckNotExpired(tok, now); err != nil {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("opaque token passes", func(t *testing.T) {
		// JWT 形式でなければ判定しない（Graph に任せる）
		if err := CheckNotExpired("not-a-jwt-token", now); err != nil {
			t.Fatalf("err = %v", err)
		}
	})
}
