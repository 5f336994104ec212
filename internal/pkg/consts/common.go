package consts

const (
	ResourcePosts     = "posts"
	ResourceFollowers = "followers"
)

// SessionCookieName 前端会话 cookie 的默认名称
const SessionCookieName = "better-auth.session_token"

// DefaultCacheTTL 客户端缓存新鲜期（秒）
const DefaultCacheTTL = 300
