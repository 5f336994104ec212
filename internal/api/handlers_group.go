package api

import (
	"Socialboard/internal/api/handler"
	"Socialboard/internal/pkg/security"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例及路由所需的鉴权组件
type HandlersGroup struct {
	PostHandler     *handler.PostHandler
	FollowerHandler *handler.FollowerHandler
	StatsHandler    *handler.StatsHandler
	AuthHandler     *handler.AuthHandler

	Authenticator  security.Authenticator
	CookieName     string
	TrustedProxies []string
	AllowedOrigins []string
}
