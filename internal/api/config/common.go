package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Cron     CronConfig     `mapstructure:"cron"`
	Client   ClientConfig   `mapstructure:"client"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // 为空时不限制
}

// UpstreamConfig 上游 mock API
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // 秒
}

// AuthConfig 鉴权配置
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	Issuer     string `mapstructure:"issuer"`
	CookieName string `mapstructure:"cookie_name"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogConfig 日志配置，LogstashAddress 为空时只输出到 stdout
type LogConfig struct {
	Level           string `mapstructure:"level"`
	LogstashAddress string `mapstructure:"logstash_address"`
	Index           string `mapstructure:"index"`
}

// CronConfig 定时任务，表达式为空则不注册
type CronConfig struct {
	StatsDigest string `mapstructure:"stats_digest"`
}

// ClientConfig dashboard 客户端
type ClientConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Token    string `mapstructure:"token"`
	CacheTTL int    `mapstructure:"cache_ttl"` // 秒
	Timeout  int    `mapstructure:"timeout"`   // 秒
}
