package wire

import (
	"Socialboard/internal/api"
	"Socialboard/internal/api/config"
	"Socialboard/internal/api/handler"
	"Socialboard/internal/job"
	"Socialboard/internal/pkg/cron"
	"Socialboard/internal/pkg/security"
	"Socialboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

// BuildApplication revoked 为 nil 时登出仅做校验，不落黑名单
func BuildApplication(cfg *config.Config, up service.Upstream, revoked security.RevocationStore) (*ApplicationContainer, error) {
	postService := service.NewPostService(up)
	followerService := service.NewFollowerService(up)
	statsService := service.NewStatsService(up)

	authenticator := security.NewJWTAuthenticator(cfg.Auth.JWTSecret, revoked)

	handlers := &api.HandlersGroup{
		PostHandler:     handler.NewPostHandler(postService),
		FollowerHandler: handler.NewFollowerHandler(followerService),
		StatsHandler:    handler.NewStatsHandler(statsService),
		AuthHandler:     handler.NewAuthHandler(authenticator),

		Authenticator:  authenticator,
		CookieName:     cfg.Auth.CookieName,
		TrustedProxies: cfg.Server.TrustedProxies,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(cfg.Cron, job.NewStatsDigestJob(statsService))

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
