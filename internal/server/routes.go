package server

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentiscope/internal/sentiment"
	"github.com/spacesedan/sentiscope/web"
)

// Options configures the router. Cache may be nil.
type Options struct {
	Analyzer     sentiment.Analyzer
	Cache        sentiment.Pinger
	MaxBatchSize int
}

// NewRouter creates the gin engine with every route registered.
func NewRouter(opts Options) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(Logger())
	router.Use(Recovery())

	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(static))

	sentimentHandler := NewSentimentHandler(opts.Analyzer, opts.MaxBatchSize)
	healthHandler := NewHealthHandler(opts.Analyzer, opts.Cache)

	router.GET("/", sentimentHandler.Index)
	router.GET("/sentimentAnalyzer", sentimentHandler.AnalyzeText)
	router.GET("/sentiment", sentimentHandler.AnalyzeJSON)
	router.POST("/sentiment/batch", sentimentHandler.AnalyzeBatch)
	router.GET("/health", healthHandler.Health)

	return router, nil
}
