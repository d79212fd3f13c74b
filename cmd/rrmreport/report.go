package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/airmetrics/rrmreport/internal/app"
	"github.com/airmetrics/rrmreport/internal/config"
	"github.com/airmetrics/rrmreport/internal/core/domain"
	"github.com/airmetrics/rrmreport/internal/telemetry"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Collect AI-RRM metrics from the controller and write a PDF report",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	setupLogging(cfg.LogLevel)

	if flagInsecure {
		cfg.VerifyTLS = false
	}
	if flagLogo != "" {
		cfg.LogoPath = flagLogo
	}

	shutdownTracer, err := telemetry.InitTracer()
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				slog.Error("Failed to shutdown tracer", "error", err)
			}
		}()
	}

	application, err := app.New(cfg)
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("Starting report run", "url", cfg.BaseURL, "bands", len(cfg.Bands))

	opts := app.RunOptions{
		OutputPath: outputPath(),
		LogoPath:   cfg.LogoPath,
	}
	if err := application.Run(ctx, opts); err != nil {
		return classifyRunError(err)
	}
	return nil
}

// classifyRunError maps the error taxonomy onto exit codes. An
// interrupt can surface wrapped inside any taxonomy error, so the
// cancellation check comes first to keep the 130 exit code.
func classifyRunError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return &exitError{code: exitCodeAuth, err: err}
	}
	var discErr *domain.DiscoveryError
	if errors.As(err, &discErr) {
		return &exitError{code: exitCodeDiscovery, err: err}
	}
	var renderErr *domain.RenderError
	if errors.As(err, &renderErr) {
		return &exitError{code: exitCodeRender, err: err}
	}
	return err
}

// outputPath returns the -o flag value or a timestamped default.
func outputPath() string {
	if flagOutput != "" {
		return flagOutput
	}
	return fmt.Sprintf("output/airrm_report_%s.pdf", time.Now().Format("20060102_150405"))
}
