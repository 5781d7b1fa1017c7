package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/http/response"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/services"
)

type ContentHandler struct {
	log            *logger.Logger
	contentService services.ContentService
}

func NewContentHandler(log *logger.Logger, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		log:            log.With("handler", "ContentHandler"),
		contentService: contentService,
	}
}

// GET /content?course_path=...&content_id=...
func (h *ContentHandler) GetContent(c *gin.Context) {
	coursePath := strings.TrimSpace(c.Query("course_path"))
	if coursePath == "" {
		response.RespondAPIError(c, apierr.Validation("course_path_required", errors.New("course_path is required")))
		return
	}
	contentID := c.DefaultQuery("content_id", domain.IntroID)

	content, err := h.contentService.GetContent(c.Request.Context(), coursePath, contentID)
	if err != nil {
		if apierr.From(err).Status >= 500 {
			h.log.Error("GetContent failed", "error", err, "course_path", coursePath, "content_id", contentID)
		}
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, content)
}

// GET /api/courses?path=...
func (h *ContentHandler) BrowseCourses(c *gin.Context) {
	path := c.Query("path")
	listing, err := h.contentService.BrowseCourses(c.Request.Context(), path)
	if err != nil {
		if apierr.From(err).Status >= 500 {
			h.log.Error("BrowseCourses failed", "error", err, "path", path)
		}
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, listing)
}
