package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tariffwatch/internal/config"
	"tariffwatch/pkg/news"

	"github.com/go-playground/assert/v2"
)

func TestNewsClientSources(t *testing.T) {
	cfg := &config.Config{APIKey: "key"}
	assert.Equal(t, "NewsAPI", NewsClient(cfg).Name())

	cfg.FinnhubAPIKey = "fh"
	assert.Equal(t, "NewsAPI+FinnHub", NewsClient(cfg).Name())

	cfg.AlphaVantageKey = "av"
	assert.Equal(t, "NewsAPI+FinnHub+AlphaVantage", NewsClient(cfg).Name())
}

func TestNewSessionRunsAgainstNewsAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","articles":[{"title":"Marubeni suspends grain exports","description":null,"url":"https://example.com/m","publishedAt":"2025-04-09T08:00:00Z"}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{
		APIKey:         "key",
		NewsAPIBaseURL: srv.URL,
		DefaultClients: []string{"Marubeni", "Itochu"},
		PageSize:       20,
	}
	sess := NewSession(cfg)

	batch, err := sess.Run(context.Background(), []string{"tariff"}, []news.Language{news.English})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(batch.Results))
	assert.Equal(t, "Marubeni", batch.Results[0].Client)
	assert.Equal(t, "BusinessDisruption", string(batch.Results[0].Impact))

	latest, ok := sess.History().Latest()
	assert.Equal(t, true, ok)
	assert.Equal(t, batch, latest)
}
