package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("NEXT_PUBLIC_MOCK_API_URL", "http://mock.local")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9090")

	if err := LoadConfig(); err != nil {
		t.Fatal(err)
	}
	if Cfg.Upstream.BaseURL != "http://mock.local" {
		t.Fatalf("base url = %q", Cfg.Upstream.BaseURL)
	}
	if Cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("jwt secret = %q", Cfg.Auth.JWTSecret)
	}
	if Cfg.Server.Port != 9090 {
		t.Fatalf("port = %d", Cfg.Server.Port)
	}
	if Cfg.Auth.CookieName != "better-auth.session_token" || Cfg.Client.CacheTTL != 300 {
		t.Fatalf("defaults not applied: %+v %+v", Cfg.Auth, Cfg.Client)
	}
}

func TestMockAPIURLTakesPrecedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("MOCK_API_URL", "http://primary")
	t.Setenv("NEXT_PUBLIC_MOCK_API_URL", "http://fallback")

	if err := LoadConfig(); err != nil {
		t.Fatal(err)
	}
	if Cfg.Upstream.BaseURL != "http://primary" {
		t.Fatalf("base url = %q", Cfg.Upstream.BaseURL)
	}
}
