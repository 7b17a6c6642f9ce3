package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/advisorkit/relay/internal/api/server"
	"github.com/advisorkit/relay/internal/config"
	"github.com/advisorkit/relay/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "relayd",
	Short: "HTTP relay in front of the agent backend",
	Long: "relayd accepts chat messages from browser clients, creates a fresh " +
		"session against the agent backend for each request, and returns the " +
		"reply either aggregated or re-streamed as token frames.",
	Run: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.InitLogger(config.LogLevel)

		server.Init()
		server.Run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&config.BackendURL, "backend-url", "", "agent backend base URL (env BACKEND_URL)")
	rootCmd.Flags().StringVar(&config.Host, "host", "", "listen host (env HOST)")
	rootCmd.Flags().StringVar(&config.Port, "port", "", "listen port (env PORT)")
	rootCmd.Flags().StringVar(&config.LogLevel, "log-level", "", "log level (env LOG_LEVEL)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
