package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/http/response"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/services"
)

const DefaultMaxUploadBytes int64 = 25 << 20

type SpeechHandler struct {
	log            *logger.Logger
	speech         services.SpeechService
	translation    services.TranslationService
	practice       services.PracticeService
	maxUploadBytes int64
}

func NewSpeechHandler(
	log *logger.Logger,
	speech services.SpeechService,
	translation services.TranslationService,
	practice services.PracticeService,
	maxUploadBytes int64,
) *SpeechHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &SpeechHandler{
		log:            log.With("handler", "SpeechHandler"),
		speech:         speech,
		translation:    translation,
		practice:       practice,
		maxUploadBytes: maxUploadBytes,
	}
}

// POST /text-to-speech
func (h *SpeechHandler) TextToSpeech(c *gin.Context) {
	var req domain.TextToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.Validation("invalid_request", err))
		return
	}
	resp, err := h.speech.TextToSpeech(c.Request.Context(), req.Text, req.VoiceID)
	if err != nil {
		h.logFailure("TextToSpeech", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, resp)
}

// POST /translate
func (h *SpeechHandler) Translate(c *gin.Context) {
	var req domain.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.Validation("invalid_request", err))
		return
	}
	resp, err := h.translation.Translate(c.Request.Context(), req.Text, req.TargetLanguage, req.VoiceID)
	if err != nil {
		h.logFailure("Translate", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, resp)
}

// POST /speech-to-text (multipart: audio, selectedText, language, voiceId)
func (h *SpeechHandler) SpeechToText(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fh, err := c.FormFile("audio")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.RespondAPIError(c, apierr.New(http.StatusRequestEntityTooLarge, "upload_too_large", err))
			return
		}
		response.RespondAPIError(c, apierr.Validation("audio_required", errors.New("audio file is required")))
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("upload_open_failed", err))
		return
	}
	defer f.Close()

	resp, err := h.practice.Evaluate(c.Request.Context(), services.PracticeInput{
		Audio:        f,
		Filename:     fh.Filename,
		SelectedText: c.PostForm("selectedText"),
		Language:     c.PostForm("language"),
		VoiceID:      c.PostForm("voiceId"),
	})
	if err != nil {
		h.logFailure("SpeechToText", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, resp)
}

func (h *SpeechHandler) logFailure(op string, err error) {
	ae := apierr.From(err)
	if ae.Status >= 500 {
		h.log.Error(op+" failed", "error", err, "code", ae.Code)
		return
	}
	h.log.Debug(op+" rejected", "error", err, "code", ae.Code)
}
