package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tariffwatch/internal/analysis"
	"tariffwatch/internal/model"
	"tariffwatch/internal/session"
	"tariffwatch/pkg/news"

	"github.com/gin-gonic/gin"
)

type BatchStore interface {
	Latest() (model.AnalysisBatch, bool)
	Previous() []model.AnalysisBatch
	Len() int
}

type RunStarter interface {
	Run(ctx context.Context, keywords []string, languages []news.Language) (model.AnalysisBatch, error)
}

type BatchHandler struct {
	history          BatchStore
	runner           RunStarter
	defaultKeywords  string
	defaultLanguages []news.Language
}

func NewBatchHandler(history BatchStore, runner RunStarter, defaultKeywords string, defaultLanguages []news.Language) *BatchHandler {
	return &BatchHandler{
		history:          history,
		runner:           runner,
		defaultKeywords:  defaultKeywords,
		defaultLanguages: defaultLanguages,
	}
}

// CreateRun triggers one analysis run and responds with its batch. The body
// is optional; missing keywords or languages fall back to the defaults.
func (h *BatchHandler) CreateRun(c *gin.Context) {
	var req RunRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("invalid run request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	keywords := analysis.ParseKeywords(req.Keywords)
	if len(keywords) == 0 {
		keywords = analysis.ParseKeywords(h.defaultKeywords)
	}

	languages, err := news.ParseLanguages(req.Languages)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(languages) == 0 {
		languages = h.defaultLanguages
	}

	batch, err := h.runner.Run(c.Request.Context(), keywords, languages)
	if errors.Is(err, session.ErrRunInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": "Analysis run already in progress"})
		return
	}
	if err != nil {
		slog.Error("error running analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusCreated, toBatchResponse(batch))
}

func (h *BatchHandler) GetLatestBatch(c *gin.Context) {
	batch, ok := h.history.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis has been run yet"})
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(batch))
}

// GetBatches returns the latest batch plus a page of earlier batches,
// most recent first.
func (h *BatchHandler) GetBatches(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	res := BatchesResponse{
		Total:   h.history.Len(),
		Limit:   limit,
		Offset:  offset,
		History: []BatchResponse{},
	}

	if latest, ok := h.history.Latest(); ok {
		l := toBatchResponse(latest)
		res.Latest = &l
	}

	previous := h.history.Previous()
	if offset < len(previous) {
		end := offset + limit
		if end > len(previous) {
			end = len(previous)
		}
		for _, b := range previous[offset:end] {
			res.History = append(res.History, toBatchResponse(b))
		}
	}

	c.JSON(http.StatusOK, res)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
