package model

import "time"

// TimestampLayout is the wall-clock format of AnalysisBatch.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

type ImpactCategory string

const (
	BusinessDisruption ImpactCategory = "BusinessDisruption"
	ProfitWarning      ImpactCategory = "ProfitWarning"
	StockImpact        ImpactCategory = "StockImpact"
	Unclassified       ImpactCategory = "Unclassified"
)

var impactLabels = map[ImpactCategory]string{
	BusinessDisruption: "业务冲击",
	ProfitWarning:      "盈利预警",
	StockImpact:        "股价影响",
	Unclassified:       "未分类",
}

// Label is the dashboard display name for the category.
func (c ImpactCategory) Label() string {
	if label, ok := impactLabels[c]; ok {
		return label
	}
	return string(c)
}

type MatchRecord struct {
	Time   string
	Client string
	Impact ImpactCategory
	Title  string
	Link   string
}

// PairReport summarizes one (language, keyword) search inside a run.
type PairReport struct {
	Language string
	Keyword  string
	Fetched  int
	Matched  int
	Failed   bool
	Error    string
}

type AnalysisBatch struct {
	Timestamp string
	Results   []MatchRecord
	Pairs     []PairReport
}

func NewBatch(now time.Time) AnalysisBatch {
	return AnalysisBatch{
		Timestamp: now.Format(TimestampLayout),
		Results:   []MatchRecord{},
		Pairs:     []PairReport{},
	}
}

func (b AnalysisBatch) Empty() bool {
	return len(b.Results) == 0
}
