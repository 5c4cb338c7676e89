package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/sentiscope/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// PolarityFunc returns a polarity in [-1, 1] for already-cleaned text.
type PolarityFunc func(text string) float64

type LocalScorer struct {
	polarity PolarityFunc
}

func NewLocalScorer() *LocalScorer {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return NewLocalScorerWithPolarity(func(text string) float64 {
		return analyzer.PolarityScores(text).Compound
	})
}

func NewLocalScorerWithPolarity(fn PolarityFunc) *LocalScorer {
	return &LocalScorer{polarity: fn}
}

func (s *LocalScorer) Backend() string {
	return models.BackendLocal
}

func (s *LocalScorer) Analyze(_ context.Context, raw string) (result models.SentimentResult) {
	text, err := NormalizeText(raw)
	if err != nil {
		return InvalidResult(models.BackendLocal)
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("[LocalScorer] Polarity scorer panicked",
				slog.Any("panic", r))
			result = ErrorResult(text, models.BackendLocal, fmt.Errorf("%w: %v", ErrScorerFailure, r))
		}
	}()

	polarity := s.polarity(ConvertMarkdownToText(text))
	if math.IsNaN(polarity) || math.IsInf(polarity, 0) {
		slog.Error("[LocalScorer] Polarity scorer returned a non-finite value",
			slog.Float64("polarity", polarity))
		return ErrorResult(text, models.BackendLocal, fmt.Errorf("%w: polarity %v", ErrScorerFailure, polarity))
	}

	return models.SentimentResult{
		Text:       text,
		Sentiment:  LabelForPolarity(polarity),
		Confidence: RoundScore(polarity),
		Backend:    models.BackendLocal,
	}
}

func LabelForPolarity(polarity float64) string {
	switch {
	case polarity > 0:
		return models.LabelPositive
	case polarity < 0:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// RoundScore rounds to 3 decimal places and folds -0 into 0.
func RoundScore(score float64) float64 {
	rounded := math.Round(score*1000) / 1000
	if rounded == 0 {
		return 0
	}
	return rounded
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText keeps the text literals of a markdown document so
// VADER sees words rather than markup.
func ConvertMarkdownToText(input string) string {
	root := blackfriday.New(blackfriday.WithNoExtensions()).Parse([]byte(input))

	var sb strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			if node.Type == blackfriday.Paragraph || node.Type == blackfriday.Heading || node.Type == blackfriday.Item {
				sb.WriteByte(' ')
			}
			return blackfriday.GoToNext
		}

		switch node.Type {
		case blackfriday.Text, blackfriday.Code, blackfriday.CodeBlock:
			sb.Write(node.Literal)
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			sb.WriteByte(' ')
		}
		return blackfriday.GoToNext
	})

	plainText := RemoveLinks(sb.String())
	return strings.Join(strings.Fields(plainText), " ")
}
