package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims はセッショントークンのクレーム（ペイロード）を表す。
// 運ぶ情報は認証済みフラグのみ。ユーザーストアは存在しない。
type SessionClaims struct {
	jwt.RegisteredClaims
	// Authenticated はログイン済みかどうかのフラグ。
	// フラグが無い・falseのトークンはすべて未認証として扱う。
	Authenticated bool `json:"authenticated"`
}

// SessionCookieName はセッショントークンを格納するCookie名。
const SessionCookieName = "session_token"

// SessionTTL はセッショントークンの有効期間。
const SessionTTL = 24 * time.Hour

// GenerateSessionToken は認証済みフラグを持つ署名付きセッショントークンを生成する。
// ログイン成功時にtranslatorサービスが呼び出す。
func GenerateSessionToken(secret string) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "honyaku",
		},
		Authenticated: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("セッショントークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// ParseSessionToken はセッショントークンを検証し、認証済みかどうかを返す。
// 署名不正・期限切れ・フラグ無しはすべて未認証（false）として扱い、エラーは返さない。
func ParseSessionToken(secret, tokenString string) bool {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	return claims.Authenticated
}

// SessionAuth はセッションCookieを検証するGinミドルウェアを返す。
// 未認証の場合は401を返し、後続のハンドラを実行しない。
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || !ParseSessionToken(secret, tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}
		c.Next()
	}
}
