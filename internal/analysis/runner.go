package analysis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tariffwatch/internal/metrics"
	"tariffwatch/internal/model"
	"tariffwatch/pkg/news"
)

type Runner struct {
	fetcher    news.NewsClient
	classifier *Classifier
	pageSize   int
	now        func() time.Time
}

func NewRunner(fetcher news.NewsClient, classifier *Classifier, pageSize int) *Runner {
	if classifier == nil {
		classifier = NewClassifier(DefaultRules)
	}
	return &Runner{
		fetcher:    fetcher,
		classifier: classifier,
		pageSize:   pageSize,
		now:        time.Now,
	}
}

// Run searches every language × keyword pair in order, one request at a
// time, and classifies the results against clients. Fetch failures count as
// zero articles for that pair and never abort the run.
func (r *Runner) Run(ctx context.Context, keywords []string, languages []news.Language, clients []string) model.AnalysisBatch {
	start := r.now()
	batch := model.NewBatch(start)
	source := r.fetcher.Name()

	for _, lang := range languages {
		for _, keyword := range keywords {
			articles, err := r.fetcher.Fetch(ctx, keyword, lang, r.pageSize)
			metrics.ObserveFetch(source, string(lang), len(articles), err)

			pair := model.PairReport{
				Language: string(lang),
				Keyword:  keyword,
				Fetched:  len(articles),
			}
			if err != nil {
				slog.Warn("news fetch failed, continuing with fetched articles", "source", source, "language", lang, "keyword", keyword, "fetched", len(articles), "error", err)
				pair.Failed = true
				pair.Error = err.Error()
			}

			records := r.classifier.Classify(articles, clients)
			for _, rec := range records {
				metrics.ObserveMatch(string(rec.Impact))
			}
			pair.Matched = len(records)

			slog.Info("pair analyzed", "language", lang, "keyword", keyword, "fetched", pair.Fetched, "matched", pair.Matched)

			batch.Pairs = append(batch.Pairs, pair)
			batch.Results = append(batch.Results, records...)
		}
	}

	metrics.ObserveRun(r.now().Sub(start))

	if batch.Empty() {
		slog.Warn("no client matches in run", "keywords", len(keywords), "languages", len(languages), "clients", len(clients))
	}

	return batch
}

// ParseKeywords splits the free-text keyword input on whitespace.
func ParseKeywords(text string) []string {
	return strings.Fields(text)
}
