package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"siris-blog/api/handlers"
	"siris-blog/api/router"
	"siris-blog/config"
	_ "siris-blog/docs"
	"siris-blog/feeder"
	"siris-blog/httpclient"
	"siris-blog/logger"
	"siris-blog/mailer"
	"siris-blog/services"
)

// @title           Siris Blog API
// @version         1.0
// @description     Read-only JSON access to the posts shown on the blog.
// @BasePath        /api/v1
func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		logger.Log.Errorf("load config: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.MailCredentialsConfigured() {
		logger.Log.Warn("mail credentials not configured; contact messages will fail to send")
	}

	engine, err := router.New(buildDeps(cfg))
	if err != nil {
		logger.Log.Errorf("build router: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewHandler(engine, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		logger.InfoWithFields("http server listening", logger.Fields{
			"addr":        cfg.Server.Addr,
			"feed_url":    cfg.Feed.URL,
			"feed_format": cfg.Feed.Format,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown: %v", err)
	}
}

func buildDeps(cfg *config.AppConfig) router.Deps {
	client := httpclient.New(httpclient.Config{
		Timeout:   cfg.Feed.Timeout,
		UserAgent: "siris-blog/1.0",
	})

	var source feeder.Source
	switch cfg.Feed.Format {
	case "rss":
		source = feeder.NewRSSSource(cfg.Feed.URL, client)
	default:
		source = feeder.NewJSONSource(cfg.Feed.URL, client)
	}

	agg := feeder.NewAggregator(source,
		feeder.WithCache(feeder.NewCache(cfg.Feed.CacheTTL)),
		feeder.WithKeepSourceDates(cfg.Feed.KeepSourceDates),
	)

	dispatcher := mailer.NewDispatcher(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.From,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		To:       cfg.Mail.To,
		Timeout:  cfg.Mail.Timeout,
	}, mailer.NewSendQuota(cfg.Mail.Quota.RequestsPerMinute, cfg.Mail.Quota.RequestsPerDay))

	return router.Deps{
		Posts:   services.NewPostService(agg),
		Contact: services.NewContactService(dispatcher, logger.Log),
		Site:    handlers.Site{OwnerName: cfg.Site.OwnerName},
	}
}
