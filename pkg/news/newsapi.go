package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultNewsAPIBaseURL = "https://newsapi.org"

// StatusError reports a non-2xx response from a news source.
type StatusError struct {
	Source     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Source, e.StatusCode)
}

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey, baseURL string) *NewsAPIClient {
	if baseURL == "" {
		baseURL = defaultNewsAPIBaseURL
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

// Fetch always returns a non-nil slice. On failure the slice is empty and the
// error says why; callers treat both the same way.
func (c *NewsAPIClient) Fetch(ctx context.Context, keyword string, language Language, pageSize int) ([]Article, error) {
	pageSize = normalizePageSize(pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(keyword, language, pageSize), nil)
	if err != nil {
		return []Article{}, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return []Article{}, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return []Article{}, &StatusError{Source: c.Name(), StatusCode: resp.StatusCode}
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return []Article{}, fmt.Errorf("newsapi decode: %w", err)
	}

	if len(raw.Articles) > pageSize {
		raw.Articles = raw.Articles[:pageSize]
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

func (c *NewsAPIClient) searchURL(keyword string, language Language, pageSize int) string {
	query := url.Values{}
	query.Set("q", keyword)
	query.Set("language", string(language))
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", strconv.Itoa(pageSize))
	query.Set("apiKey", c.apiKey)
	return c.baseURL + "/v2/everything?" + query.Encode()
}

// null title/description decode to "".
type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}
