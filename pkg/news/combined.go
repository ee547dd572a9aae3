package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type CombinedClient struct {
	clients []NewsClient
}

// Combine queries every client in order and concatenates their articles.
// A failing client does not discard what the others returned.
func Combine(clients ...NewsClient) *CombinedClient {
	return &CombinedClient{clients: clients}
}

func (c *CombinedClient) Name() string {
	names := make([]string, 0, len(c.clients))
	for _, client := range c.clients {
		names = append(names, client.Name())
	}
	return strings.Join(names, "+")
}

func (c *CombinedClient) Fetch(ctx context.Context, keyword string, language Language, pageSize int) ([]Article, error) {
	articles := []Article{}
	var errs []error

	for _, client := range c.clients {
		fetched, err := client.Fetch(ctx, keyword, language, pageSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", client.Name(), err))
		}
		articles = append(articles, fetched...)
	}

	return articles, errors.Join(errs...)
}
