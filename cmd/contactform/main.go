package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-contactform/config"
	"github.com/vortex-fintech/go-contactform/form"
	"github.com/vortex-fintech/go-contactform/foundation/contactutil"
	"github.com/vortex-fintech/go-contactform/foundation/logger"
	"github.com/vortex-fintech/go-contactform/metrics"
	"github.com/vortex-fintech/go-contactform/prompt"
)

func main() {
	envFile := flag.String("env-file", "", "optional .env file loaded before reading CONTACTFORM_* variables")
	locale := flag.String("locale", "", "override CONTACTFORM_LOCALE (pt-BR, en)")
	metricsOut := flag.String("metrics-out", "", "write validation counters in Prometheus text format to this file on exit")
	flag.Parse()

	if err := run(*envFile, *locale, *metricsOut); err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(envFile, locale, metricsOut string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if locale != "" {
		cfg.Locale = locale
	}

	log, err := logger.New("contactform", cfg.Env, cfg.LoggerOptions()...)
	if err != nil {
		return err
	}
	defer log.SafeSync()

	collector := metrics.NewCollector("")
	reg := prometheus.NewRegistry()
	if err := collector.Register(reg); err != nil {
		return err
	}
	if metricsOut != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
				log.Errorw("write metrics", "path", metricsOut, "error", err)
			}
		}()
	}

	opts := append(cfg.FormOptions(), form.WithLogger(log), form.WithObserver(collector))
	ctrl := form.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scheme := contactutil.BR.WithLengths(cfg.PhoneLengths...)
	runner := prompt.NewRunner(prompt.NewSurveyDriver(), ctrl, cfg.Catalog(), scheme.Pattern())

	sub, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	log.Infow("form submitted", "id", sub.ID.String(), "locale", cfg.Catalog().Tag().String())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sub)
}
