package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/prompt"
	"github.com/vaultpass/passgen-go/internal/service"
)

var version = "dev"

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	analyzer, err := service.NewAnalyzerService(cfg.BcryptCost)
	if err != nil {
		slog.Error("invalid bcrypt cost", "cost", cfg.BcryptCost, "error", err)
		os.Exit(1)
	}

	app := &handler.App{
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Generator: service.NewGeneratorService(os.Stderr),
		Analyzer:  analyzer,
		Prompter: func() (prompt.Driver, error) {
			if !prompt.IsTerminal(os.Stdin) {
				return nil, prompt.ErrNotTerminal
			}
			return prompt.NewSurveyDriver(os.Stdin, os.Stdout, os.Stderr), nil
		},
		Version: version,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := handler.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		if !service.IsValidationError(err) {
			slog.Debug("command failed", "error", err)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
