package config

import (
	"Socialboard/internal/pkg/consts"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.trusted_proxies", []string{"localhost"})
	viper.SetDefault("server.allowed_origins", []string{})
	viper.SetDefault("upstream.base_url", "")
	viper.SetDefault("upstream.timeout", 10)
	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.issuer", "Socialboard")
	viper.SetDefault("auth.cookie_name", consts.SessionCookieName)
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.index", "logstash-socialboard")
	viper.SetDefault("cron.stats_digest", "")
	viper.SetDefault("client.base_url", "http://localhost:8080")
	viper.SetDefault("client.cache_ttl", consts.DefaultCacheTTL)
	viper.SetDefault("client.timeout", 30)
}

// LoadConfig 从文件与环境变量加载配置并填充到 Cfg
// 配置文件可缺省，上游地址读取 MOCK_API_URL（兼容 NEXT_PUBLIC_MOCK_API_URL）
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("upstream.base_url", "MOCK_API_URL", "NEXT_PUBLIC_MOCK_API_URL"); err != nil {
		return err
	}
	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
