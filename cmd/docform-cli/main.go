package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	docform "github.com/goliatone/go-docform"
	"github.com/goliatone/go-docform/internal/config"
	"github.com/goliatone/go-docform/internal/logging"
	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/renderers/tui"
	"github.com/goliatone/go-docform/pkg/schema"
	"github.com/goliatone/go-docform/pkg/submission"
)

func main() {
	envFile := flag.String("env-file", ".env", "dotenv file read before the environment")
	formName := flag.String("form", "", "form to fill: resume or cover_letter (DOCFORM_FORM)")
	baseURL := flag.String("base-url", "", "generation backend base URL (DOCFORM_BASE_URL)")
	logLevel := flag.String("log-level", "", "log level (DOCFORM_LOG_LEVEL)")
	logFormat := flag.String("log-format", "", "log format: console or json (DOCFORM_LOG_FORMAT)")
	logFile := flag.String("log-file", "", "also write logs to this rotated file (DOCFORM_LOG_FILE)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	overrides := map[string]*string{
		"form":       &cfg.Form,
		"base-url":   &cfg.BaseURL,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
		"log-file":   &cfg.LogFile,
	}
	values := map[string]string{
		"form":       *formName,
		"base-url":   *baseURL,
		"log-level":  *logLevel,
		"log-format": *logFormat,
		"log-file":   *logFile,
	}
	flag.Visit(func(f *flag.Flag) {
		if target, ok := overrides[f.Name]; ok {
			*target = values[f.Name]
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     logging.Format(cfg.LogFormat),
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, logger)
	stop()
	_ = logger.Close()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger) int {
	formType := model.FormType(cfg.Form)
	form, err := schema.For(formType)
	if err != nil {
		logger.Error().Err(err).Msg("load form schema")
		return 1
	}

	httpClient := &http.Client{}
	if cfg.RequestTimeoutS > 0 {
		httpClient.Timeout = time.Duration(cfg.RequestTimeoutS) * time.Second
	}

	v := tui.NewView(form)
	f, err := docform.New(ctx, formType, v,
		docform.WithBaseURL(cfg.BaseURL),
		docform.WithHTTPClient(httpClient),
		docform.WithLogger(logger.Logger),
		docform.WithTransitionHook(func(from, to submission.State) {
			logger.Debug().Str("from", from.String()).Str("to", to.String()).Msg("submission state")
		}),
	)
	if err != nil {
		logger.Error().Err(err).Msg("build form")
		return 1
	}

	resp, err := tui.New(tui.WithLogger(logger.Logger)).Run(ctx, f)
	switch {
	case err == nil:
		logger.Info().
			Str("form", string(formType)).
			Str("download_url", resp.DownloadURL).
			Msg("done")
		return 0
	case errors.Is(err, tui.ErrAborted):
		fmt.Fprintln(os.Stderr, "aborted")
		return 130
	default:
		logger.Error().Err(err).Str("form", string(formType)).Msg("generation failed")
		return 1
	}
}
