package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"tariffwatch/internal/analysis"
	"tariffwatch/internal/app"
	"tariffwatch/internal/config"
	"tariffwatch/internal/report"
	"tariffwatch/pkg/news"
)

func main() {
	keywordText := flag.String("keywords", "", "Space-separated search keywords (default from DEFAULT_KEYWORDS)")
	languageList := flag.String("languages", "", "Comma-separated language codes: zh,en,ja,es (default from DEFAULT_LANGUAGES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	keywords := analysis.ParseKeywords(*keywordText)
	if len(keywords) == 0 {
		keywords = analysis.ParseKeywords(cfg.DefaultKeywords)
	}

	languages := cfg.DefaultLanguages
	if *languageList != "" {
		languages, err = news.ParseLanguages(strings.Split(*languageList, ","))
		if err != nil {
			log.Fatalf("invalid -languages: %v", err)
		}
	}

	sess := app.NewSession(cfg)

	fmt.Println("🔍 正在抓取新闻...")

	batch, err := sess.Run(context.Background(), keywords, languages)
	if err != nil {
		log.Fatalf("error running analysis: %v", err)
	}

	fmt.Print(report.Pairs(batch))
	fmt.Println()
	fmt.Print(report.Table(batch))

	if batch.Empty() {
		fmt.Println("❗没有识别出任何客户相关内容，建议检查关键词或客户名称是否能匹配新闻正文")
	}
}
