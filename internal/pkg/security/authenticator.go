package security

import (
	"Socialboard/internal/pkg/consts"
	"Socialboard/internal/pkg/redis"
	"context"
	"errors"
	"time"
)

var (
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid or expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// Authenticator 判断请求携带的 token 是否有效
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*UserClaims, error)
	// Revoke 注销 token，直至其自然过期
	Revoke(ctx context.Context, token string) error
}

// RevocationStore 已注销 token 的签名黑名单
type RevocationStore interface {
	IsRevoked(ctx context.Context, signature string) (bool, error)
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
}

type jwtAuthenticator struct {
	secret  string
	revoked RevocationStore
}

// NewJWTAuthenticator revoked 为 nil 时不做黑名单校验
func NewJWTAuthenticator(secret string, revoked RevocationStore) Authenticator {
	return &jwtAuthenticator{secret: secret, revoked: revoked}
}

func (a *jwtAuthenticator) Authenticate(ctx context.Context, token string) (*UserClaims, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	signature, err := ExtractSignature(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, err := ValidateToken(a.secret, token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if a.revoked != nil {
		revoked, err := a.revoked.IsRevoked(ctx, signature)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

func (a *jwtAuthenticator) Revoke(ctx context.Context, token string) error {
	claims, err := a.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if a.revoked == nil {
		return nil
	}
	signature, _ := ExtractSignature(token)

	ttl := JWTExpirationTime
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return a.revoked.Revoke(ctx, signature, ttl)
}

// RedisRevocationStore 基于 Redis 的黑名单
type RedisRevocationStore struct{}

func NewRedisRevocationStore() *RedisRevocationStore {
	return &RedisRevocationStore{}
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, signature string) (bool, error) {
	return redis.Marked(ctx, consts.TokenRevokedKey+signature)
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return redis.Mark(ctx, consts.TokenRevokedKey+signature, ttl)
}
