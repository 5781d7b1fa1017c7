package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/readaloud-backend/internal/catalog"
	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/http/response"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListVoices(c *gin.Context) {
	voices := h.catalog.Voices
	if voices == nil {
		voices = []domain.Voice{}
	}
	response.RespondOK(c, voices)
}

func (h *CatalogHandler) ListLanguages(c *gin.Context) {
	langs := h.catalog.Languages
	if langs == nil {
		langs = []domain.Language{}
	}
	response.RespondOK(c, langs)
}
