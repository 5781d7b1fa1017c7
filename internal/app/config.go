package app

import (
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/readaloud-backend/internal/http/handlers"
	"github.com/yungbote/readaloud-backend/internal/platform/envutil"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/services"
)

const (
	AudioStorageLocal = "local"
	AudioStorageGCS   = "gcs"
)

type Config struct {
	Port           string
	CourseFilesDir string
	AudioFilesDir  string
	ServerBaseURL  string
	WorkDir        string
	CatalogFile    string
	CORSOrigins    []string

	AudioStorage      string
	AudioBucketName   string
	AudioCDNDomain    string
	AudioObjectPrefix string

	OpenAIAPIKey          string
	OpenAIBaseURL         string
	OpenAITimeout         time.Duration
	OpenAISpeechModel     string
	OpenAITranscribeModel string
	TranslateModel        string
	FeedbackModel         string

	STTProvider     string
	STTLanguageCode string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	MaxTextChars   int
	MaxAudio       time.Duration
	MaxUploadBytes int64

	Otel OtelSettings
}

type OtelSettings struct {
	Enabled     bool
	ServiceName string
	Environment string
	Version     string
	Endpoint    string
	Headers     string
	Insecure    bool
	SampleRatio float64
}

// LoadDotEnv reads .env from the working directory when present.
func LoadDotEnv(log *logger.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.String("PORT", "8000", log)
	baseURL := envutil.String("SERVER_BASE_URL", "http://localhost:"+port, log)

	cfg := Config{
		Port:           port,
		CourseFilesDir: envutil.String("COURSE_FILES_DIR", "courses", log),
		AudioFilesDir:  envutil.String("AUDIO_FILES_DIR", "audio_files", log),
		ServerBaseURL:  strings.TrimRight(baseURL, "/"),
		WorkDir:        envutil.String("WORK_DIR", ".", log),
		CatalogFile:    envutil.String("CATALOG_FILE", "", log),
		CORSOrigins:    envutil.List("CORS_ALLOW_ORIGINS", []string{"*"}, log),

		AudioStorage:      strings.ToLower(envutil.String("AUDIO_STORAGE", AudioStorageLocal, log)),
		AudioBucketName:   envutil.String("AUDIO_GCS_BUCKET_NAME", "", log),
		AudioCDNDomain:    envutil.String("AUDIO_CDN_DOMAIN", "", log),
		AudioObjectPrefix: envutil.String("AUDIO_OBJECT_PREFIX", "audio", log),

		OpenAIAPIKey:          envutil.String("OPENAI_API_KEY", "", log),
		OpenAIBaseURL:         envutil.String("OPENAI_BASE_URL", "", log),
		OpenAITimeout:         envutil.Seconds("OPENAI_TIMEOUT_SECONDS", 0, log),
		OpenAISpeechModel:     envutil.String("OPENAI_TTS_MODEL", "", log),
		OpenAITranscribeModel: envutil.String("OPENAI_STT_MODEL", "", log),
		TranslateModel:        envutil.String("OPENAI_TRANSLATE_MODEL", services.DefaultTranslateModel, log),
		FeedbackModel:         envutil.String("OPENAI_FEEDBACK_MODEL", services.DefaultFeedbackModel, log),

		STTProvider:     strings.ToLower(envutil.String("STT_PROVIDER", services.STTProviderOpenAI, log)),
		STTLanguageCode: envutil.String("STT_LANGUAGE_CODE", "en-US", log),

		RedisAddr:     envutil.String("REDIS_ADDR", "", log),
		RedisPassword: envutil.String("REDIS_PASSWORD", "", log),
		RedisDB:       envutil.Int("REDIS_DB", 0, log),
		CacheTTL:      envutil.Seconds("CACHE_TTL_SECONDS", 24*time.Hour, log),

		MaxTextChars:   envutil.Int("MAX_TEXT_CHARS", services.DefaultMaxTextChars, log),
		MaxAudio:       envutil.Seconds("MAX_AUDIO_SECONDS", services.DefaultMaxAudio, log),
		MaxUploadBytes: envutil.Int64("MAX_UPLOAD_BYTES", handlers.DefaultMaxUploadBytes, log),

		Otel: OtelSettings{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "readaloud-backend", log),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development", log),
			Version:     envutil.String("OTEL_SERVICE_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: float64(envutil.Int("OTEL_SAMPLE_PERCENT", 100, log)) / 100,
		},
	}
	return cfg
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) Limits() services.Limits {
	return services.Limits{MaxTextChars: c.MaxTextChars, MaxAudio: c.MaxAudio}
}
