package handler

import "tariffwatch/internal/model"

const noMatchesNotice = "没有识别出任何客户相关内容，建议检查关键词或客户名称是否能匹配新闻正文"

type MatchResponse struct {
	Time        string `json:"time"`
	Client      string `json:"client"`
	Impact      string `json:"impact"`
	ImpactLabel string `json:"impact_label"`
	Title       string `json:"title"`
	Link        string `json:"link"`
}

type PairResponse struct {
	Language string `json:"language"`
	Keyword  string `json:"keyword"`
	Fetched  int    `json:"fetched"`
	Matched  int    `json:"matched"`
	Failed   bool   `json:"failed"`
	Error    string `json:"error,omitempty"`
}

type BatchResponse struct {
	Timestamp string          `json:"timestamp"`
	Results   []MatchResponse `json:"results"`
	Pairs     []PairResponse  `json:"pairs"`
	Notice    string          `json:"notice,omitempty"`
}

type BatchesResponse struct {
	Latest  *BatchResponse  `json:"latest"`
	History []BatchResponse `json:"history"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

type ClientsResponse struct {
	Clients []string `json:"clients"`
}

type AddClientRequest struct {
	Name string `json:"name"`
}

type RunRequest struct {
	Keywords  string   `json:"keywords"`
	Languages []string `json:"languages"`
}

func toBatchResponse(b model.AnalysisBatch) BatchResponse {
	res := BatchResponse{
		Timestamp: b.Timestamp,
		Results:   make([]MatchResponse, 0, len(b.Results)),
		Pairs:     make([]PairResponse, 0, len(b.Pairs)),
	}

	for _, r := range b.Results {
		res.Results = append(res.Results, MatchResponse{
			Time:        r.Time,
			Client:      r.Client,
			Impact:      string(r.Impact),
			ImpactLabel: r.Impact.Label(),
			Title:       r.Title,
			Link:        r.Link,
		})
	}

	for _, p := range b.Pairs {
		res.Pairs = append(res.Pairs, PairResponse{
			Language: p.Language,
			Keyword:  p.Keyword,
			Fetched:  p.Fetched,
			Matched:  p.Matched,
			Failed:   p.Failed,
			Error:    p.Error,
		})
	}

	if b.Empty() {
		res.Notice = noMatchesNotice
	}

	return res
}
