// Package app wires configuration into the session used by the commands.
package app

import (
	"log/slog"

	"tariffwatch/internal/analysis"
	"tariffwatch/internal/config"
	"tariffwatch/internal/notify"
	"tariffwatch/internal/session"
	"tariffwatch/pkg/news"
)

// NewsClient returns NewsAPI alone, or NewsAPI followed by the optional
// market-news sources whose keys are configured.
func NewsClient(cfg *config.Config) news.NewsClient {
	var client news.NewsClient = news.NewNewsAPIClient(cfg.APIKey, cfg.NewsAPIBaseURL)

	clients := []news.NewsClient{client}
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if cfg.AlphaVantageKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageKey))
	}

	if len(clients) > 1 {
		client = news.Combine(clients...)
	}

	slog.Info("news sources configured", "source", client.Name())
	return client
}

func NewSession(cfg *config.Config) *session.Session {
	runner := analysis.NewRunner(NewsClient(cfg), analysis.NewClassifier(analysis.DefaultRules), cfg.PageSize)

	var notifier session.Notifier
	if cfg.Email.Enabled() {
		notifier = notify.NewEmailSender(cfg.Email)
		slog.Info("email notifications enabled", "smtp_server", cfg.Email.SMTPServer, "to", cfg.Email.ToEmail)
	}

	return session.New(cfg.DefaultClients, runner, notifier)
}
