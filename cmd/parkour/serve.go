package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkour-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSentryDSN   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the parkour SSH server",
	Long: `Start an SSH server that allows users to connect and run courses.

Each SSH connection gets its own session with the settings menu. All
sessions share the tuning loaded at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.parkour/host_key

Crash reporting:
  - With --sentry-dsn (or SENTRY_DSN), session panics are sent to Sentry

Examples:
  parkour serve                           # Listen on :23234 with auto-generated key
  parkour serve --ssh :2222               # Listen on port 2222
  parkour serve --host-key ./my_host_key  # Use specific host key
  parkour serve --config ./event.yaml     # Serve custom tuning

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSentryDSN, "sentry-dsn", os.Getenv("SENTRY_DSN"), "Sentry DSN for crash reports")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "parkour-ssh",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}

	if flagSentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: flagSentryDSN}); err != nil {
			return fmt.Errorf("initializing sentry: %w", err)
		}
		defer sentry.Flush(5 * time.Second)
		logger.Info("sentry reporting enabled")
	}

	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Tuning = tuning

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting parkour SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
