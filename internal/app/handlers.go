package app

import (
	"github.com/yungbote/readaloud-backend/internal/http/handlers"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Content *handlers.ContentHandler
	Speech  *handlers.SpeechHandler
	Catalog *handlers.CatalogHandler
}

func wireHandlers(log *logger.Logger, cfg Config, svc Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		Content: handlers.NewContentHandler(log, svc.Content),
		Speech:  handlers.NewSpeechHandler(log, svc.Speech, svc.Translation, svc.Practice, cfg.MaxUploadBytes),
		Catalog: handlers.NewCatalogHandler(svc.Catalog),
	}
}
