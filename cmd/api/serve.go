package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/anjiri1684/error_paper/aigen"
	config "github.com/anjiri1684/error_paper/configs"
	"github.com/anjiri1684/error_paper/jobs"
	"github.com/anjiri1684/error_paper/ocr"
	"github.com/anjiri1684/error_paper/routes"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func aiConfig(s *config.Settings) aigen.Config {
	return aigen.Config{
		Provider: s.AIProvider,
		OpenAI: aigen.OpenAIConfig{
			APIKey:  s.OpenAIAPIKey,
			Model:   s.OpenAIModel,
			BaseURL: s.OpenAIBaseURL,
		},
		Anthropic: aigen.AnthropicConfig{APIKey: s.AnthropicAPIKey, Model: s.AnthropicModel},
		Gemini:    aigen.GeminiConfig{APIKey: s.GeminiAPIKey, Model: s.GeminiModel},
		Timeout:   s.AITimeout,
		Retries:   s.AIRetryAttempts,
	}
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	settings, store, closeDB, err := setup()
	if err != nil {
		return err
	}
	defer closeDB()

	cfg := aiConfig(settings)
	provider, err := aigen.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("AI provider ready", "provider", settings.AIProvider, "model", provider.ModelID())

	scheduler := cron.New()
	if err := jobs.ScheduleOrphanSweep(scheduler, settings.OrphanSweepSchedule, store); err != nil {
		return err
	}
	scheduler.Start()
	defer func() {
		<-scheduler.Stop().Done()
	}()

	app := routes.NewApp(routes.Dependencies{
		Store:       store,
		Generator:   aigen.NewQuestionGenerator(provider, cfg),
		Recognizer:  ocr.New(settings.OCRBinary, settings.OCRLanguage),
		JWTSecret:   settings.JWTSecret,
		CORSOrigins: settings.CORSOrigin,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server is running", "port", settings.Port)
		errCh <- app.Listen(":" + settings.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
