package app

import (
	"fmt"

	"github.com/yungbote/readaloud-backend/internal/catalog"
	"github.com/yungbote/readaloud-backend/internal/course"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/services"
)

type Services struct {
	Catalog     *catalog.Catalog
	Content     services.ContentService
	Speech      services.SpeechService
	Translation services.TranslationService
	Practice    services.PracticeService
	// AudioDir is set only when audio is stored on local disk.
	AudioDir string
}

func wireServices(log *logger.Logger, cfg Config, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return Services{}, fmt.Errorf("load catalog: %w", err)
	}

	var (
		store    services.AudioStore
		audioDir string
	)
	switch cfg.AudioStorage {
	case AudioStorageGCS:
		store = services.NewBucketAudioStore(log, clients.GcpBucket, cfg.AudioObjectPrefix)
	case AudioStorageLocal, "":
		store, err = services.NewLocalAudioStore(log, cfg.AudioFilesDir, cfg.ServerBaseURL)
		if err != nil {
			return Services{}, err
		}
		audioDir = cfg.AudioFilesDir
	default:
		return Services{}, fmt.Errorf("unknown AUDIO_STORAGE %q", cfg.AudioStorage)
	}

	var gcpTranscriber services.Transcriber
	if clients.GcpSpeech != nil {
		gcpTranscriber = clients.GcpSpeech
	}
	transcriber, err := services.SelectTranscriber(cfg.STTProvider, clients.OpenAI, gcpTranscriber)
	if err != nil {
		return Services{}, err
	}

	speechDeps := services.SpeechDeps{
		Synthesizer: clients.OpenAI,
		Store:       store,
		Catalog:     cat,
		SpeechModel: cfg.OpenAISpeechModel,
		Cache:       clients.Cache,
		Limits:      cfg.Limits(),
	}

	return Services{
		Catalog: cat,
		Content: services.NewContentService(log, course.NewStore(log, cfg.CourseFilesDir)),
		Speech:  services.NewSpeechService(log, speechDeps),
		Translation: services.NewTranslationService(log, services.TranslationDeps{
			SpeechDeps:     speechDeps,
			Chat:           clients.OpenAI,
			TranslateModel: cfg.TranslateModel,
		}),
		Practice: services.NewPracticeService(log, services.PracticeDeps{
			SpeechDeps:    speechDeps,
			Chat:          clients.OpenAI,
			Transcriber:   transcriber,
			Media:         clients.Media,
			FeedbackModel: cfg.FeedbackModel,
		}),
		AudioDir: audioDir,
	}, nil
}
