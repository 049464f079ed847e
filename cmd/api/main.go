// @title        COMCLIC clinic records API
// @version      1.0
// @description  Role-gated records for patient visits, immunizations and clinic finances.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/comclic/clinic-records/internal/api"
	"github.com/comclic/clinic-records/internal/api/handler"
	"github.com/comclic/clinic-records/internal/core/ports"
	"github.com/comclic/clinic-records/internal/core/service"
	mongodb "github.com/comclic/clinic-records/internal/infrastructure/db/mongo"
	redisdb "github.com/comclic/clinic-records/internal/infrastructure/db/redis"
	"github.com/comclic/clinic-records/internal/infrastructure/mail"
	"github.com/comclic/clinic-records/internal/infrastructure/queue"
	"github.com/comclic/clinic-records/internal/pkg/config"
	"github.com/comclic/clinic-records/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "clinic-records",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// storage
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	// mail
	var sender ports.MailSender = mail.NewLogSender(logger.Component("mail"))
	if cfg.Mail.Host != "" {
		sender = mail.NewSMTPSender(mail.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	} else {
		log.Warn().Msg("SMTP_HOST not set, reset emails will only be logged")
	}
	mailer := queue.NewMailDispatcher(cfg.Mail.Workers, sender, logger.Component("mail"))
	// workers outlive the signal context so Close can drain the queue
	mailer.Start(context.Background())

	// services
	authService := service.NewAuthService(service.AuthDeps{
		Users:     mongodb.NewUserRepository(db),
		Blacklist: mongodb.NewTokenBlacklist(db),
		Sessions:  redisdb.NewSessionCache(rdb),
		Tokens:    service.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL),
		Passwords: service.NewPasswordHasher(0),
		Mail:      mailer,
		ResetURL:  cfg.Mail.ResetURL,
	}, logger.Component("auth"))

	records := logger.Component("records")
	router := api.NewRouter(api.Dependencies{
		Auth:          authService,
		Patients:      service.NewPatientService(mongodb.NewPatientRepository(db), records),
		Immunizations: service.NewImmunizationService(mongodb.NewImmunizationRepository(db), records),
		Finances:      service.NewFinanceService(mongodb.NewFinanceRepository(db), records),
		Readiness: map[string]handler.Pinger{
			"mongodb": mongodb.NewPinger(mongoClient),
			"redis":   redisdb.NewPinger(rdb),
		},
		Cookie: handler.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
			TTL:    cfg.Auth.AccessTokenTTL,
		},
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, log)

	// http
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	shutdown(log, srv, mailer, func(ctx context.Context) error {
		if err := rdb.Close(); err != nil {
			return err
		}
		return mongoClient.Disconnect(ctx)
	})
}

func shutdown(log zerolog.Logger, srv *http.Server, mailer *queue.MailDispatcher, closeStores func(context.Context) error) {
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	mailer.Close()
	if err := closeStores(ctx); err != nil {
		log.Error().Err(err).Msg("closing stores")
	}
	log.Info().Msg("shutdown complete")
}
