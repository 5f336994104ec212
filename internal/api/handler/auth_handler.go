package handler

import (
	"Socialboard/internal/pkg/response"
	"Socialboard/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth security.Authenticator
}

func NewAuthHandler(auth security.Authenticator) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// Logout 注销当前 token，需挂在 AuthMiddleware 之后
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Revoke(c.Request.Context(), c.GetString("token")); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMessage(c, "Logged out")
}
