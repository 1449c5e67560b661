package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "charm.land/log/v2"
	"github.com/hako/durafmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/nicolasparada/smarttask/ai"
	"github.com/nicolasparada/smarttask/auth"
	"github.com/nicolasparada/smarttask/cockroach"
	"github.com/nicolasparada/smarttask/cockroach/migrator"
	"github.com/nicolasparada/smarttask/config"
	"github.com/nicolasparada/smarttask/pubsub"
	"github.com/nicolasparada/smarttask/realtime"
	"github.com/nicolasparada/smarttask/service"
	httptransport "github.com/nicolasparada/smarttask/transport/http"
)

const shutdownTimeout = time.Second * 15

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	// "token <user-id>" prints a bearer token and exits.
	if len(os.Args) > 1 && os.Args[1] == "token" {
		return issueToken(os.Args[2:])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := pgxpool.New(ctx, cfg.CockroachURL)
	if err != nil {
		return fmt.Errorf("open cockroach connection pool: %w", err)
	}

	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping cockroach: %w", err)
	}

	migrationStart := time.Now()
	infoLogger.Info("starting cockroach migrations")

	applied, err := migrator.Migrate(ctx, dbPool, cockroach.MigrationsFS)
	if err != nil {
		return fmt.Errorf("migrate cockroach schema: %w", err)
	}

	infoLogger.Info("finished cockroach migrations", "applied", len(applied), "took", durafmt.Parse(time.Since(migrationStart)).LimitFirstN(2).String())

	var ps pubsub.PubSub = pubsub.NewMemory()
	if cfg.NATSURL != "" {
		nc, err := pubsub.DialNATS(cfg.NATSURL)
		if err != nil {
			return fmt.Errorf("dial nats: %w", err)
		}

		defer nc.Close()
		ps = nc
		infoLogger.Info("using nats pubsub", "url", cfg.NATSURL)
	}

	completer, err := ai.New(ctx, ai.Config{
		APIKey:       cfg.GeminiAPIKey,
		Model:        cfg.AIModel,
		UseMock:      cfg.UseMockAI,
		RateInterval: cfg.AIRateInterval,
		Logger:       errLogger,
	})
	if err != nil {
		return fmt.Errorf("create ai completer: %w", err)
	}

	infoLogger.Info("using ai provider", "name", completer.Name())

	tokens, err := auth.NewTokens(cfg.TokenKey, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token issuer: %w", err)
	}

	db := cockroach.New(dbPool)
	svc := service.New(&service.Config{
		UserDirectory:     db,
		MessageStore:      db,
		NotificationStore: db,
		TaskStore:         db,
		ReportStore:       db,
		PerformanceStore:  db,
		Hub:               realtime.NewHub(ps, errLogger),
		Completer:         completer,
		Logger:            errLogger,
		StrictMessaging:   cfg.StrictMessaging,
		BaseCtx:           context.WithoutCancel(ctx),
		BackgroundTimeout: cfg.BackgroundTimeout,
	})

	go func() {
		for err := range svc.Errs() {
			errLogger.Error("service error", "error", err)
		}
	}()

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: httptransport.New(httptransport.Config{
			Service:         svc,
			Tokens:          tokens,
			Logger:          errLogger,
			RefreshInterval: cfg.RefreshInterval,
		}),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		infoLogger.Info("starting smarttask server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start smarttask server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		infoLogger.Info("shutting down smarttask server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown smarttask server: %w", err)
		}
		return nil
	})

	err = g.Wait()

	if err := svc.Close(); err != nil {
		errLogger.Error("close service", "error", err)
	}

	return err
}

func issueToken(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: smarttask token <user-id>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tokens, err := auth.NewTokens(cfg.TokenKey, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token issuer: %w", err)
	}

	token, err := tokens.Issue(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\nexpires in %s\n", token, durafmt.Parse(tokens.TTL()).LimitFirstN(1))
	return nil
}
