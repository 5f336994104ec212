package api

import (
	"Socialboard/internal/api/middleware"
	"Socialboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(group.TrustedProxies)

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(group.AllowedOrigins))
	r.Use(middleware.AuditMiddleware("/api/ping", "/api/auth"))
	logger.SetupGin(r, "/api/ping")

	authMiddleware := middleware.AuthMiddleware(group.Authenticator, group.CookieName)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
			})
		})

		authGroup := apiGroup.Group("/auth")
		authGroup.Use(authMiddleware)
		{
			authGroup.POST("/logout", group.AuthHandler.Logout)
		}

		socialGroup := apiGroup.Group("/social-media")
		socialGroup.Use(authMiddleware)
		{
			socialGroup.GET("/posts", group.PostHandler.ListPosts)
			socialGroup.POST("/posts", group.PostHandler.CreatePost)
			socialGroup.PUT("/posts", group.PostHandler.UpdatePost)
			socialGroup.DELETE("/posts", group.PostHandler.DeletePost)

			socialGroup.GET("/followers", group.FollowerHandler.ListFollowers)
			socialGroup.POST("/followers", group.FollowerHandler.CreateFollower)
			socialGroup.PUT("/followers", group.FollowerHandler.UpdateFollower)
			socialGroup.DELETE("/followers", group.FollowerHandler.DeleteFollower)

			socialGroup.GET("/stats", group.StatsHandler.GetStats)
		}
	}

	return r
}
