package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/api/routes"
	"github.com/Priyanshpaila/Recruitment-backend/internal/application"
	"github.com/Priyanshpaila/Recruitment-backend/internal/attachments"
	"github.com/Priyanshpaila/Recruitment-backend/internal/auth"
	"github.com/Priyanshpaila/Recruitment-backend/internal/idcard"
	"github.com/Priyanshpaila/Recruitment-backend/internal/notify"
	"github.com/Priyanshpaila/Recruitment-backend/internal/users"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/auth/session"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/env"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/mail"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/metrics"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/migrate"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/redis"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/security"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/storage/s3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	blobStore, err := s3.New(context.Background(), cfg.Storage)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap object storage", err)
		os.Exit(1)
	}

	var mailer notify.Sender
	if cfg.SMTP.Enabled() {
		m, err := mail.NewMailer(cfg.SMTP, cfg.Company)
		if err != nil {
			logg.Error(context.Background(), "failed to build mailer", err)
			os.Exit(1)
		}
		mailer = m
	} else {
		logg.Warn(context.Background(), "smtp not configured, welcome mail disabled")
	}
	notifier := notify.New(mailer, logg)
	defer notifier.Close()

	userRepo := users.NewRepository(dbClient.DB())
	sessionStore := session.NewStore(dbClient.DB())
	attachmentSvc, err := attachments.NewService(attachments.NewRepository(dbClient.DB()), blobStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create attachments service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionStore:   sessionStore,
		Notifier:       notifier,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{
		Repo:        userRepo,
		Attachments: attachmentSvc,
		Notifier:    notifier,
		Hash: func(secret string) (string, error) {
			return security.HashSecret(secret, cfg.Password)
		},
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	idcardService, err := idcard.NewService(idcard.ServiceParams{
		Cards:       idcard.NewRepository(dbClient.DB()),
		Users:       userRepo,
		Attachments: attachmentSvc,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create idcard service", err)
		os.Exit(1)
	}

	applicationService, err := application.NewService(application.ServiceParams{
		Repo: application.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create application service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Metrics:     httpMetrics,
			Sessions:    sessionStore,
			Users:       userRepo,
			AuthSvc:     authService,
			UsersSvc:    usersService,
			IDCardSvc:   idcardService,
			AppFormsSvc: applicationService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
