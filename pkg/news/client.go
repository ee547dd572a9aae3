package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const DefaultPageSize = 20

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Language string

const (
	Chinese  Language = "zh"
	English  Language = "en"
	Japanese Language = "ja"
	Spanish  Language = "es"
)

// Languages lists every language the dashboard can search, in display order.
var Languages = []Language{Chinese, English, Japanese, Spanish}

func ParseLanguage(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range Languages {
		if l == lang {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// ParseLanguages keeps the input order and drops blank entries.
func ParseLanguages(values []string) ([]Language, error) {
	var langs []Language
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		lang, err := ParseLanguage(v)
		if err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return langs, nil
}

type Article struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
	Source      string
}

type NewsClient interface {
	Fetch(ctx context.Context, keyword string, language Language, pageSize int) ([]Article, error)
	Name() string
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	return pageSize
}

// mentions is the local keyword filter for sources without server-side search.
func mentions(a Article, keyword string) bool {
	return strings.Contains(strings.ToLower(a.Title+" "+a.Description), strings.ToLower(keyword))
}
