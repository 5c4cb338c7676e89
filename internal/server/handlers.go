package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

const (
	MsgNoText       = "No text provided! Please enter some text."
	MsgInvalidBatch = "Request body must be JSON of the form {\"texts\": [...]}."
	resultSentence  = "The given text has been identified as %s with a score of %s."
)

type SentimentHandler struct {
	analyzer     sentiment.Analyzer
	maxBatchSize int
}

func NewSentimentHandler(analyzer sentiment.Analyzer, maxBatchSize int) *SentimentHandler {
	return &SentimentHandler{analyzer: analyzer, maxBatchSize: maxBatchSize}
}

// Index handles GET /
func (h *SentimentHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Backend": h.analyzer.Backend()})
}

// AnalyzeText handles GET /sentimentAnalyzer?textToAnalyze=...
func (h *SentimentHandler) AnalyzeText(c *gin.Context) {
	text, err := sentiment.NormalizeText(c.Query("textToAnalyze"))
	if err != nil {
		c.String(http.StatusBadRequest, MsgNoText)
		return
	}

	result := h.analyze(c, text)
	c.String(http.StatusOK, resultSentence, result.Sentiment, sentiment.FormatScore(result.Confidence))
}

// AnalyzeJSON handles GET /sentiment?text=...
func (h *SentimentHandler) AnalyzeJSON(c *gin.Context) {
	text, err := sentiment.NormalizeText(c.Query("text"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgNoText})
		return
	}

	c.JSON(http.StatusOK, h.analyze(c, text))
}

// AnalyzeBatch handles POST /sentiment/batch
func (h *SentimentHandler) AnalyzeBatch(c *gin.Context) {
	var req models.SentimentBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidBatch})
		return
	}
	if len(req.Texts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgNoText})
		return
	}
	if len(req.Texts) > h.maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Too many texts in one batch; the limit is " + strconv.Itoa(h.maxBatchSize) + ".",
		})
		return
	}

	results := sentiment.AnalyzeBatch(c.Request.Context(), h.analyzer, req.Texts, nil)
	for _, r := range results {
		logSentinel(c, r)
	}

	c.JSON(http.StatusOK, models.SentimentBatchResponse{Results: results})
}

func (h *SentimentHandler) analyze(c *gin.Context, text string) models.SentimentResult {
	result := h.analyzer.Analyze(c.Request.Context(), text)
	logSentinel(c, result)
	return result
}

func logSentinel(c *gin.Context, result models.SentimentResult) {
	if result.Err == nil {
		return
	}
	slog.Warn("[SentimentHandler] Analyzer returned a sentinel result",
		slog.String("sentiment", result.Sentiment),
		slog.String("backend", result.Backend),
		slog.String("error", result.Err.Error()),
		slog.String("request_id", c.GetString(requestIDKey)))
}
