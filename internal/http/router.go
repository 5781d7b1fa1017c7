package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/readaloud-backend/internal/http/handlers"
	httpMW "github.com/yungbote/readaloud-backend/internal/http/middleware"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/services"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	// AudioDir is served at /audio when set (local audio storage only).
	AudioDir string

	HealthHandler  *httpH.HealthHandler
	ContentHandler *httpH.ContentHandler
	SpeechHandler  *httpH.SpeechHandler
	CatalogHandler *httpH.CatalogHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		r.Use(otelgin.Middleware(name))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Course content
	if cfg.ContentHandler != nil {
		r.GET("/content", cfg.ContentHandler.GetContent)
		r.GET("/api/courses", cfg.ContentHandler.BrowseCourses)
	}

	// Speech
	if cfg.SpeechHandler != nil {
		r.POST("/text-to-speech", cfg.SpeechHandler.TextToSpeech)
		r.POST("/speech-to-text", cfg.SpeechHandler.SpeechToText)
		r.POST("/translate", cfg.SpeechHandler.Translate)
	}

	// Catalog
	if cfg.CatalogHandler != nil {
		r.GET("/voices", cfg.CatalogHandler.ListVoices)
		r.GET("/languages", cfg.CatalogHandler.ListLanguages)
	}

	if cfg.AudioDir != "" {
		r.Static(services.AudioRoute, cfg.AudioDir)
	}

	return r
}
