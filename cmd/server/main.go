// Command server runs the flashcard generation HTTP endpoint.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
)

// configPathEnv names an explicit config file; without it viper looks for
// flashdeck.yaml in the working directory.
const configPathEnv = "FLASHDECK_CONFIG"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flashdeck server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv(configPathEnv))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server.LogLevel, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"strict_cards", cfg.LLM.StrictCards)
	if cfg.LLM.GeminiAPIKey == "" {
		// Not fatal: the key is read per request and may be provided later.
		l.Warn("Gemini API key not set at startup")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", cfg.Server.Port, err)
	}

	if err := app.serve(ctx, ln); err != nil {
		return err
	}
	l.Info("Server shutdown completed")
	return nil
}
