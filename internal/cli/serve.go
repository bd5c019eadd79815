package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clauselens/clauselens/internal/nlu"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/clauselens/clauselens/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the annotation HTTP API",
	Long: `Serve exposes the annotation pipeline over HTTP:
- POST /api/analyze  {"text": ...} -> full annotation report
- POST /api/compare  {"doc1_text": ..., "doc2_text": ...} -> clause-type diff
- POST /api/upload   multipart file -> extracted text preview
- POST /api/nlu      {"text": ...} -> NLU enrichment (mock fallback)

Example:
  clauselens serve
  clauselens serve --addr :8080
  clauselens serve --nlu openai`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":5000", "listen address")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")

	// NLU flags
	serveCmd.Flags().BoolVar(&nluEnabled, "nlu", false, "enable external NLU enrichment")
	serveCmd.Flags().StringVar(&nluProvider, "nlu-provider", "openai", "NLU provider (openai, mock)")
	serveCmd.Flags().StringVar(&nluModel, "nlu-model", "gpt-4o-mini", "NLU model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.Addr = serveAddr

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Always construct the NLU service for the API: with no provider it
	// serves the documented mock results.
	nluService := nlu.NewService(cfg.NLU, cfg.RateLimiting, verbose)
	analyzer := pipeline.NewAnalyzer(cfg, toneBackend(nluService))

	srv := server.New(cfg, analyzer, nluService, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
