package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/render"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/router"
	"github.com/iliyamo/fyyur/internal/seed"
	"github.com/iliyamo/fyyur/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("shutdown complete")
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	dialect, err := database.ParseDialect(cfg.DBDriver)
	if err != nil {
		return err
	}
	db, err := database.Open(ctx, database.Options{
		Dialect: dialect,
		User:    cfg.DBUser,
		Pass:    cfg.DBPass,
		Host:    cfg.DBHost,
		Port:    cfg.DBPort,
		Name:    cfg.DBName,
		SSLMode: cfg.DBSSL,
		Path:    cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db, dialect); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	opts := []service.Option{service.WithLogger(log)}
	if cfg.RabbitMQURL != "" {
		opts = append(opts, service.WithPublisher(queue.NewPublisher(cfg.RabbitMQURL)))
		log.Info("publishing domain events to RabbitMQ")
	}
	dir := service.NewDirectory(repository.NewStore(db, dialect), opts...)

	if cfg.DBSeed {
		if _, err := seed.Run(ctx, dir, log); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	rdb := config.NewRedisClient(ctx, cfg.Redis)
	if rdb == nil {
		log.WithField("addr", cfg.Redis.Address()).Warn("redis unavailable, rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}
	e := router.New(router.Options{
		Handler:      handler.New(dir, log),
		Renderer:     renderer,
		Log:          log,
		Redis:        rdb,
		RateLimit:    cfg.RateLimit,
		CookieSecure: cfg.CookieSecure,
	})
	return serve(ctx, e, ":"+cfg.Port, log)
}

// serve runs the HTTP server until ctx is cancelled, then drains it.
func serve(ctx context.Context, e *echo.Echo, addr string, log logrus.FieldLogger) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down http server")
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
