package cli

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/client"
	"Socialboard/internal/pkg/logger"
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Socialboard dashboard client",
	Long: `Command line client for the Socialboard social-media proxy.
Reads posts, follower records and aggregated stats through the
same cached data layer the dashboard uses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(); err != nil {
			return err
		}
		logger.InitLogger(config.Cfg.Log)
		if baseURL != "" {
			config.Cfg.Client.BaseURL = baseURL
		}
		if token != "" {
			config.Cfg.Client.Token = token
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Proxy base URL (overrides client.base_url)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (overrides client.token)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenCmd)
}

func newDashboard() *client.Dashboard {
	cfg := config.Cfg.Client
	cache := client.NewCache(time.Duration(cfg.CacheTTL)*time.Second, nil)
	return client.NewDashboard(client.NewFetcher(cfg, cache))
}

// loadState 加载一次数据；被中断时返回 ctx 的错误，不把空状态当成结果
func loadState(ctx context.Context, d *client.Dashboard) (client.State, error) {
	if err := d.Load(ctx); err != nil {
		return client.State{}, err
	}
	if err := ctx.Err(); err != nil {
		return client.State{}, err
	}
	st := d.State()
	if st.Err != nil {
		return st, st.Err
	}
	if st.Dashboard == nil {
		return st, errors.New("no stats returned")
	}
	return st, nil
}
