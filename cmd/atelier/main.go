package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/pkg/config"
	"github.com/dmitrymomot/atelier/pkg/cookie"
	"github.com/dmitrymomot/atelier/pkg/environment"
	"github.com/dmitrymomot/atelier/pkg/httpserver"
	"github.com/dmitrymomot/atelier/pkg/logger"
	"github.com/dmitrymomot/atelier/pkg/metrics"
	"github.com/dmitrymomot/atelier/pkg/requestid"
	"github.com/dmitrymomot/atelier/pkg/session"
	"github.com/dmitrymomot/atelier/storefront"
)

func main() {
	if err := run(); err != nil {
		slog.Error("atelier exited", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var (
		appCfg     storefront.Config
		serverCfg  httpserver.Config
		sessionCfg session.Config
		cookieCfg  cookie.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&sessionCfg) },
		func() error { return config.Load(&cookieCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := environment.Parse(appCfg.Env)
	opts := []logger.Option{
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if appCfg.LogLevel != "" {
		level, err := logger.ParseLevel(appCfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	if len(cookieCfg.SecretList()) == 0 {
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		cookieCfg.Secrets = secret
		log.Warn("COOKIE_SECRETS is not set; sessions will not survive a restart",
			logger.Component("main"))
	}
	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	sessions := session.NewFromConfig(sessionCfg,
		session.WithCookieManager(cookies),
		session.WithLogger(log),
	)
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Error("failed to close session manager", logger.Component("main"), logger.Error(err))
		}
	}()

	router := storefront.NewRouter(storefront.Deps{
		Catalog:  cat,
		Sessions: sessions,
		Metrics:  metrics.New(appCfg.Name),
		Log:      log,
		Env:      env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpserver.New(serverCfg, httpserver.WithLogger(log)).Run(ctx, router)
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
