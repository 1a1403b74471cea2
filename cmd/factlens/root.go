package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/factlens/factlens/internal/config"
	"github.com/factlens/factlens/internal/server"
	"github.com/factlens/factlens/internal/verifier"
	"github.com/factlens/factlens/pkg/version"
)

var (
	configPath    string
	port          int
	debug         bool
	analysisDelay time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "factlens",
	Short: "Serve the FactLens news verification API",
	Long: `factlens serves a small web front end and a JSON endpoint that
cross-references a URL or text snippet against trusted news outlets and
returns a verdict, a confidence score and the matching coverage.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "HTTP server listen port (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&analysisDelay, "analysis-delay", 0, "simulated analysis latency (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	slog.Info("starting FactLens API server",
		"port", cfg.Port,
		"debug", cfg.Debug,
		"analysis_delay", cfg.AnalysisDelay.String(),
		"rate_limit_rps", cfg.RateLimit.RequestsPerSecond,
		"trust_proxy_headers", cfg.TrustProxyHeaders,
		"version", version.Version,
	)

	srv := server.New(server.Config{
		Verifier:          verifier.New(verifier.WithDelay(cfg.AnalysisDelay)),
		RateLimit:         cfg.RateLimit,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	if err := srv.Run(context.Background(), cfg.Addr()); err != nil {
		slog.Error("server failed", "error", err)
		return err
	}
	return nil
}

// loadConfig applies explicitly set flags on top of file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("analysis-delay") {
		cfg.AnalysisDelay = analysisDelay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
