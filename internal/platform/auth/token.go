package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("credential expired")

// CheckNotExpired: 呼び出し元から渡された Graph トークンの事前チェック。
// 署名鍵は Microsoft 側にあるので検証はできないが、JWT 形式なら exp だけ覗いて
// 明らかに失効しているものを Graph へ投げる前に弾く。
// JWT 形式でない・exp が無い場合は判定せず通す（最終判断は Graph に任せる）。
func CheckNotExpired(tokenStr string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if now.After(exp.Time) {
		return ErrTokenExpired
	}
	return nil
}
