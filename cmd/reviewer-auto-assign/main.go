package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ashphy/reviewer-auto-assign/internal/assigner"
	"github.com/ashphy/reviewer-auto-assign/internal/config"
	"github.com/ashphy/reviewer-auto-assign/internal/github"
	"github.com/ashphy/reviewer-auto-assign/internal/githubapp"
	"github.com/ashphy/reviewer-auto-assign/internal/server"
	"github.com/ashphy/reviewer-auto-assign/internal/webhook"
	"github.com/ashphy/reviewer-auto-assign/pkg/logger"
)

func main() {
	// .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("error on loading config: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic("error on building logger: " + err.Error())
	}
	defer log.Sync()

	// Invalid key material is fatal: nothing works without signing.
	key, err := githubapp.ParseKey(cfg.PrivateKey)
	if err != nil {
		log.Fatal("failed to parse GitHub App private key", zap.Error(err))
	}

	httpClient := &http.Client{Timeout: cfg.OutboundTimeout}

	minter := githubapp.NewMinter(cfg.AppID, key)
	exchanger := githubapp.NewExchanger(cfg.GitHubAPIBaseURL, httpClient)
	ghClient := github.NewClient(cfg.GitHubAPIBaseURL, httpClient)

	svc := assigner.NewService(minter, exchanger, ghClient, ghClient, log)
	handler := webhook.NewHandler(cfg.WebhookSecret, svc, log)

	srv := server.New(cfg.Port, cfg.ShutdownTimeout, handler, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}

	log.Info("server stopped")
}
