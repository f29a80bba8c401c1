package main

import (
	"github.com/spf13/cobra"

	"video-proxy-go/internal/app"
	"video-proxy-go/pkg/config"
)

func init() {
	rootCmd.PersistentFlags().IntP("port", "p", 0, "Listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON (overrides LOG_JSON)")
}

var rootCmd = &cobra.Command{
	Use:           "video-proxy",
	Short:         "Proxy that extracts and streams videos from social media posts",
	Long:          "Serves /api/fetch, /api/extract and /api/download for public Facebook, Instagram, TikTok and Twitter/X posts.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(loadConfig(cmd))
		if err != nil {
			return err
		}
		return application.Run()
	},
}

// loadConfig reads the environment and applies flags the user set.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	flags := cmd.Flags()

	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	return cfg
}
