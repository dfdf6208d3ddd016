package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/statusboard/internal/config"
	"github.com/hamed0406/statusboard/internal/feed"
	"github.com/hamed0406/statusboard/internal/httpapi"
	"github.com/hamed0406/statusboard/internal/logging"
	"github.com/hamed0406/statusboard/internal/metrics"
	"github.com/hamed0406/statusboard/internal/notify"
	"github.com/hamed0406/statusboard/internal/probe"
	"github.com/hamed0406/statusboard/internal/relay"
	"github.com/hamed0406/statusboard/internal/scheduler"
	"github.com/hamed0406/statusboard/internal/view"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	rc := relay.NewClient(cfg.RelayURL, cfg.FetchTimeout)
	store := view.NewStore()

	ref := scheduler.NewRefresher(
		logger,
		feed.NewClient(rc, cfg.StatusFeedURL),
		probe.NewRelayChecker(rc, logger),
		cfg.ProbeURL,
		store,
		m,
		cfg.RefreshInterval,
		cfg.FetchTimeout,
	)
	if slack := notify.NewSlack(cfg.SlackWebhook); slack != nil {
		ref.Transitions = scheduler.NewTransitions(slack, cfg.NotifyCooldown, true)
	}

	refDone := make(chan struct{})
	go func() {
		ref.Run(ctx)
		close(refDone)
	}()

	api := httpapi.NewServer(logger, store, ref, cfg.RefreshRPM, cfg.RefreshBurst)
	srv := &http.Server{Addr: cfg.Addr, Handler: api.Router()}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("api_listen",
		zap.String("addr", cfg.Addr),
		zap.String("feed", cfg.StatusFeedURL),
		zap.Duration("interval", cfg.RefreshInterval),
	)
	serveErr := srv.ListenAndServe()
	if serveErr == http.ErrServerClosed {
		serveErr = nil
	}

	<-refDone
	logger.Info("shutdown_complete")
	if err := multierr.Append(serveErr, logger.Sync()); err != nil {
		log.Print(err)
	}
}
