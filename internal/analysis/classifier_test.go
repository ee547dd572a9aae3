package analysis

import (
	"testing"

	"tariffwatch/internal/model"
	"tariffwatch/pkg/news"

	"github.com/go-playground/assert/v2"
)

func TestImpactPriority(t *testing.T) {
	c := NewClassifier(DefaultRules)

	tests := []struct {
		name string
		text string
		want model.ImpactCategory
	}{
		{name: "suspend", text: "Company suspends shipments", want: model.BusinessDisruption},
		{name: "delay beats profit", text: "Port delay hits quarterly profit", want: model.BusinessDisruption},
		{name: "suspend beats earnings", text: "Company suspends shipments amid earnings concerns", want: model.BusinessDisruption},
		{name: "earnings", text: "Earnings guidance cut", want: model.ProfitWarning},
		{name: "profit beats stock", text: "Profit falls, stock slides", want: model.ProfitWarning},
		{name: "stock", text: "Acme stock drops", want: model.StockImpact},
		{name: "share price", text: "Share Price tumbles", want: model.StockImpact},
		{name: "nothing", text: "Acme announces new product", want: model.Unclassified},
		{name: "empty", text: "", want: model.Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Impact(tt.text))
		})
	}
}

func TestClassifyStockImpact(t *testing.T) {
	c := NewClassifier(DefaultRules)
	articles := []news.Article{
		{Title: "Acme stock drops", URL: "https://example.com/acme", PublishedAt: "2025-04-09T08:00:00Z"},
	}

	records := c.Classify(articles, []string{"Acme"})

	assert.Equal(t, 1, len(records))
	assert.Equal(t, model.MatchRecord{
		Time:   "2025-04-09T08:00:00Z",
		Client: "Acme",
		Impact: model.StockImpact,
		Title:  "Acme stock drops",
		Link:   "https://example.com/acme",
	}, records[0])
}

func TestClassifyUnclassified(t *testing.T) {
	c := NewClassifier(DefaultRules)

	records := c.Classify([]news.Article{{Title: "Acme announces new product"}}, []string{"Acme"})

	assert.Equal(t, 1, len(records))
	assert.Equal(t, model.Unclassified, records[0].Impact)
}

func TestClassifyCaseInsensitiveAcrossDescription(t *testing.T) {
	c := NewClassifier(DefaultRules)
	articles := []news.Article{
		{Title: "Shipping update", Description: "MITSUI O.S.K. delays sailings"},
	}

	records := c.Classify(articles, []string{"Mitsui O.S.K."})

	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Mitsui O.S.K.", records[0].Client)
	assert.Equal(t, model.BusinessDisruption, records[0].Impact)
}

func TestClassifyJoinsTitleAndDescriptionWithSpace(t *testing.T) {
	c := NewClassifier(DefaultRules)

	records := c.Classify([]news.Article{{Title: "Louis", Description: "Dreyfus cuts"}}, []string{"Louis Dreyfus"})
	assert.Equal(t, 1, len(records))

	records = c.Classify([]news.Article{{Title: "Louis", Description: "Dreyfus"}}, []string{"LouisDreyfus"})
	assert.Equal(t, 0, len(records))
}

func TestClassifyNoMatch(t *testing.T) {
	c := NewClassifier(DefaultRules)
	articles := []news.Article{
		{Title: "Tariffs rise", Description: "Markets react"},
		{Title: "", Description: ""},
	}

	records := c.Classify(articles, []string{"Itochu", "丸红", ""})

	assert.Equal(t, 0, len(records))
}

func TestClassifyOrder(t *testing.T) {
	c := NewClassifier(DefaultRules)
	articles := []news.Article{
		{Title: "丸红 and 伊藤忠商事 face tariff costs", URL: "a"},
		{Title: "Itochu profit outlook", URL: "b"},
		{Title: "伊藤忠商事 stock", URL: "c"},
	}
	clients := []string{"伊藤忠商事", "丸红", "Itochu"}

	first := c.Classify(articles, clients)
	second := c.Classify(articles, clients)

	assert.Equal(t, first, second)
	assert.Equal(t, 4, len(first))

	var got []string
	for _, r := range first {
		got = append(got, r.Link+":"+r.Client)
	}
	assert.Equal(t, []string{"a:伊藤忠商事", "a:丸红", "b:Itochu", "c:伊藤忠商事"}, got)
}

func TestClassifyDoesNotMutateInputs(t *testing.T) {
	c := NewClassifier(DefaultRules)
	articles := []news.Article{{Title: "Acme Stock", Description: "Delay"}}
	clients := []string{"ACME"}

	c.Classify(articles, clients)

	assert.Equal(t, "Acme Stock", articles[0].Title)
	assert.Equal(t, "Delay", articles[0].Description)
	assert.Equal(t, []string{"ACME"}, clients)
}

func TestClassifyCustomRules(t *testing.T) {
	c := NewClassifier([]Rule{
		{Triggers: []string{"tariff"}, Impact: model.ProfitWarning},
	})

	records := c.Classify([]news.Article{{Title: "Tariff on Acme"}}, []string{"acme"})

	assert.Equal(t, 1, len(records))
	assert.Equal(t, model.ProfitWarning, records[0].Impact)
	assert.Equal(t, "acme", records[0].Client)
}
