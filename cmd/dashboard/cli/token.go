package cli

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/pkg/security"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development token signed with auth.jwt_secret",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "dev", "User id carried in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", security.JWTExpirationTime, "Token time-to-live")
}

func runToken(cmd *cobra.Command, args []string) error {
	auth := config.Cfg.Auth
	if auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret (JWT_SECRET) is not set")
	}
	t, err := security.GenerateToken(auth.JWTSecret, auth.Issuer, tokenUser, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}
