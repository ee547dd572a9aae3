package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// marketNewsAPI is the slice of the finnhub client used here, so tests can
// substitute canned market news.
type marketNewsAPI interface {
	generalNews(ctx context.Context) ([]finnhub.MarketNews, error)
}

type finnhubAPI struct {
	client *finnhub.DefaultApiService
}

func (a finnhubAPI) generalNews(ctx context.Context) ([]finnhub.MarketNews, error) {
	res, _, err := a.client.MarketNews(ctx).Category("general").Execute()
	return res, err
}

// FinnHubClient has no keyword search, so it pulls general market news and
// keeps the items mentioning the keyword. Finnhub only carries English news.
type FinnHubClient struct {
	api marketNewsAPI
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{api: finnhubAPI{client: client}}
}

func (c *FinnHubClient) Fetch(ctx context.Context, keyword string, language Language, pageSize int) ([]Article, error) {
	articles := []Article{}
	if language != English {
		return articles, nil
	}
	pageSize = normalizePageSize(pageSize)

	res, err := c.api.generalNews(ctx)
	if err != nil {
		return articles, err
	}

	for _, news := range res {
		if len(articles) == pageSize {
			break
		}

		a := Article{
			Source: c.Name(),
		}

		if news.Headline != nil {
			a.Title = *news.Headline
		}

		if news.Summary != nil {
			a.Description = *news.Summary
		}

		if news.Url != nil {
			a.URL = *news.Url
		}

		if news.Datetime != nil {
			a.PublishedAt = time.Unix(*news.Datetime, 0).UTC().Format(time.RFC3339)
		}

		if !mentions(a, keyword) {
			continue
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}
