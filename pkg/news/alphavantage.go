package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAlphaVantageBaseURL = "https://www.alphavantage.co"

// alphaVantageFeedLimit is how many items are pulled before the local keyword filter.
const alphaVantageFeedLimit = 200

type AlphaVantageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		baseURL:    defaultAlphaVantageBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

// Fetch filters the latest sentiment feed by keyword. The feed is English only.
func (c *AlphaVantageClient) Fetch(ctx context.Context, keyword string, language Language, pageSize int) ([]Article, error) {
	articles := []Article{}
	if language != English {
		return articles, nil
	}
	pageSize = normalizePageSize(pageSize)

	url := fmt.Sprintf(
		"%s/query?function=NEWS_SENTIMENT&limit=%d&sort=LATEST&apikey=%s",
		c.baseURL, alphaVantageFeedLimit, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return articles, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return articles, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return articles, &StatusError{Source: c.Name(), StatusCode: resp.StatusCode}
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return articles, fmt.Errorf("alphavantage decode: %w", err)
	}

	for _, item := range raw.Feed {
		if len(articles) == pageSize {
			break
		}

		a := Article{
			Title:       item.Title,
			Description: item.Summary,
			URL:         item.URL,
			PublishedAt: formatTimePublished(item.TimePublished),
			Source:      c.Name(),
		}

		if mentions(a, keyword) {
			articles = append(articles, a)
		}
	}

	return articles, nil
}

// formatTimePublished converts 20260226T075324 to RFC3339; unparseable values pass through.
func formatTimePublished(s string) string {
	t, err := time.Parse("20060102T150405", s)
	if err != nil {
		return s
	}
	return t.Format(time.RFC3339)
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	TimePublished string `json:"time_published"`
}
