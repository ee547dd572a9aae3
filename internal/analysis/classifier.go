package analysis

import (
	"strings"

	"tariffwatch/internal/model"
	"tariffwatch/pkg/news"
)

// Rule assigns Impact when any trigger occurs in the lower-cased article text.
// Triggers must be lower case.
type Rule struct {
	Triggers []string
	Impact   model.ImpactCategory
}

// DefaultRules are evaluated top to bottom; the first hit wins.
var DefaultRules = []Rule{
	{Triggers: []string{"suspend", "delay"}, Impact: model.BusinessDisruption},
	{Triggers: []string{"profit", "earnings"}, Impact: model.ProfitWarning},
	{Triggers: []string{"stock", "share price"}, Impact: model.StockImpact},
}

type Classifier struct {
	rules    []Rule
	fallback model.ImpactCategory
}

func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules, fallback: model.Unclassified}
}

// Impact returns the category of the first matching rule, or Unclassified.
func (c *Classifier) Impact(text string) model.ImpactCategory {
	text = strings.ToLower(text)
	for _, rule := range c.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(text, trigger) {
				return rule.Impact
			}
		}
	}
	return c.fallback
}

// Classify emits one record per (article, client) pair where the client name
// occurs in the article, in article order then client order.
func (c *Classifier) Classify(articles []news.Article, clients []string) []model.MatchRecord {
	records := []model.MatchRecord{}

	for _, article := range articles {
		content := strings.ToLower(searchText(article))

		for _, client := range clients {
			if client == "" || !strings.Contains(content, strings.ToLower(client)) {
				continue
			}

			records = append(records, model.MatchRecord{
				Time:   article.PublishedAt,
				Client: client,
				Impact: c.Impact(content),
				Title:  article.Title,
				Link:   article.URL,
			})
		}
	}

	return records
}

func searchText(a news.Article) string {
	return a.Title + " " + a.Description
}
