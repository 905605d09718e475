// Package main is the entry point for the MindLink EEG analysis server.
// MindLink receives one-minute windows of EEG summary statistics from the
// companion mobile app, analyzes them with an LLM provider (Anthropic or
// OpenAI), and answers user questions, with a rule-based offline fallback.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/normanking/mindlink/internal/analysis"
	"github.com/normanking/mindlink/internal/config"
	"github.com/normanking/mindlink/internal/llm"
	"github.com/normanking/mindlink/internal/logging"
	"github.com/normanking/mindlink/internal/server"
)

var version = "1.0.0"

var (
	cfgPath string
	port    int
	verbose bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dd3fc"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mindlink",
		Short: "EEG analysis server for brain-computer interface apps",
		Long: `MindLink is an HTTP backend that turns raw EEG metric history
(attention, meditation, blink) into mental-state insights using an LLM
provider, with a deterministic rule-based fallback when no provider is
configured or reachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default ~/.mindlink/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "listening port (overrides config)")
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mindlink %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if err := logging.Setup(level, cfg.Logging.File); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}
	if !provider.Available() {
		log.Warn().Str("provider", provider.Name()).Msg("no API key configured, serving rule-based analysis only")
	}

	timeout := time.Duration(cfg.LLM.Providers[provider.Name()].TimeoutSec) * time.Second
	engine := analysis.NewEngine(provider, timeout)
	srv := server.New(cfg, engine, version)

	fmt.Println(titleStyle.Render("⬡ MindLink EEG Analysis Server"))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  URL: http://127.0.0.1:%d", cfg.Server.Port)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  AI provider: %s", engine.ProviderName())))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgPath != "" {
		return config.LoadFromPath(cfgPath)
	}
	return config.Load()
}
