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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jobzen/dashboard/internal/api"
	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/core/ports"
	"github.com/jobzen/dashboard/internal/core/service"
	mongostore "github.com/jobzen/dashboard/internal/infrastructure/db/mongo"
	redisstore "github.com/jobzen/dashboard/internal/infrastructure/db/redis"
	"github.com/jobzen/dashboard/internal/infrastructure/http/handlers"
	"github.com/jobzen/dashboard/internal/infrastructure/upstream"
	"github.com/jobzen/dashboard/internal/pkg/config"
	"github.com/jobzen/dashboard/pkg/logger"
)

const (
	serviceName     = "jobzen-dashboard"
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, config.Load())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	sealer, err := redisstore.NewSealer(cfg.Session.Key)
	if err != nil {
		return err
	}
	sessions := redisstore.NewSessionStore(rdb, sealer, cfg.Session.TTL)
	toasts := redisstore.NewToastQueue(rdb)

	readiness := map[string]handlers.Pinger{"redis": handlers.RedisPinger(rdb)}

	var prefs ports.ThemePreferenceRepository
	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := mongostore.Disconnect(client, shutdownTimeout); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}()
		prefs = mongostore.NewThemePreferenceRepository(db)
		readiness["mongo"] = handlers.MongoPinger(db)
	} else {
		log.Warn().Msg("MONGO_URI not set, theme selections are kept in cookies only")
	}

	apiClient := upstream.New(upstream.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, logger.Component("upstream"))

	e, err := api.NewRouter(api.Deps{
		Log:        log,
		Jar:        cookie.Jar{Secure: cfg.Session.CookieSecure, MaxAge: cfg.Session.TTL},
		Sessions:   sessions,
		Toasts:     toasts,
		Auth:       service.NewAuthService(apiClient, sessions, log),
		Profiles:   service.NewProfileService(apiClient, sessions, log),
		Managed:    service.NewManagedUserService(apiClient, sessions, log),
		Themes:     service.NewThemeService(prefs, log),
		Dashboards: service.DashboardService{},
		Readiness:  readiness,
		LoginRate:  rate.Limit(cfg.Session.LoginRate),
		LoginBurst: cfg.Session.LoginBurst,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("api", cfg.API.BaseURL).Msg("dashboard listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return shutdown(e.Shutdown, log)
}

func shutdown(fn func(context.Context) error, log zerolog.Logger) error {
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}
