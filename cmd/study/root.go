package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/flashdeck/internal/client"
	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/tui"
	"github.com/spf13/cobra"
)

type studyOptions struct {
	configPath string
	serverURL  string
	topic      string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts studyOptions

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Study AI-generated flashcards in the terminal",
		Long: `Type a topic, get a deck of question/answer flashcards, and work through
them one card at a time.

Keys:
  enter      generate a deck for the typed topic
  ←/h →/l    previous / next card
  space      flip the card
  tab        switch between the topic input and the card
  q          quit (ctrl+c anywhere)

Example:
  study --topic "Photosynthesis" --server http://localhost:8080`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runStudy(cmd.Context(), cfg, opts.topic)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a flashdeck config file")
	cmd.Flags().StringVar(&opts.serverURL, "server", "", "flashdeck server URL (default from config)")
	cmd.Flags().StringVar(&opts.topic, "topic", "", "generate a deck for this topic on start")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (default from config)")

	return cmd
}

// resolveConfig loads the client config and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts studyOptions) (*config.ClientConfig, error) {
	cfg, err := config.LoadClient(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("server") {
		cfg.ServerURL = opts.serverURL
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

func runStudy(ctx context.Context, cfg *config.ClientConfig, topic string) error {
	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	l, err := logger.Setup(cfg.LogLevel, logFile)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	c, err := client.New(cfg.ServerURL, client.WithLogger(l))
	if err != nil {
		return err
	}
	l.Info("study session starting", "server_url", cfg.ServerURL)

	opts := []tui.Option{tui.WithRenderer(newRendererFactory(glamourStyle()))}
	if topic != "" {
		opts = append(opts, tui.WithTopic(topic))
	}

	p := tea.NewProgram(tui.New(ctx, c, l, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("study session failed: %w", err)
	}
	return nil
}

// glamourStyle picks the card style once, before the program owns the
// terminal and background queries would race with input.
func glamourStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func newRendererFactory(style string) tui.RendererFactory {
	return func(width int) (*glamour.TermRenderer, error) {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
	}
}
