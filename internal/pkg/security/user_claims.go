package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const JWTExpirationTime = time.Hour * 24

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
