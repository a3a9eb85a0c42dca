package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"shelf-assist-be/internal/pkg/serverutils"
)

type Config struct {
	App      AppConfig
	Detector DetectorConfig
	Vision   VisionConfig
	Speech   SpeechConfig
	Voice    VoiceConfig
	Lookup   LookupConfig
}

type AppConfig struct {
	Port               string `validate:"required"`
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadDir          string `validate:"required"`
}

// DetectorConfig points at the hosted region-proposal model.
type DetectorConfig struct {
	URL     string `validate:"required,url"`
	APIKey  string
	ModelID string
}

// VisionConfig points at the classification model server and names the two
// model kinds it serves.
type VisionConfig struct {
	BaseURL       string `validate:"required,url"`
	ProductModel  string
	CurrencyModel string
}

type SpeechConfig struct {
	Provider  string // "whisper-cli" or "server"
	ServerURL string
	Language  string
}

type VoiceConfig struct {
	TTSBaseURL string `validate:"required,url"`
	PlayerBin  string
}

type LookupConfig struct {
	URL         string `validate:"required,url"`
	CacheTTLSec int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8888"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		},
		Detector: DetectorConfig{
			URL:     getEnv("DETECTOR_URL", "https://detect.roboflow.com"),
			APIKey:  getEnv("DETECTOR_API_KEY", ""),
			ModelID: getEnv("DETECTOR_MODEL_ID", "sku-110k/2"),
		},
		Vision: VisionConfig{
			BaseURL:       getEnv("VISION_BASE_URL", "http://localhost:8000"),
			ProductModel:  getEnv("VISION_PRODUCT_MODEL", "product-classifier"),
			CurrencyModel: getEnv("VISION_CURRENCY_MODEL", "currency-detector"),
		},
		Speech: SpeechConfig{
			Provider:  getEnv("SPEECH_PROVIDER", "whisper-cli"),
			ServerURL: getEnv("SPEECH_SERVER_URL", "http://localhost:9000"),
			Language:  getEnv("SPEECH_LANGUAGE", "en"),
		},
		Voice: VoiceConfig{
			TTSBaseURL: getEnv("TTS_BASE_URL", "http://localhost:5002"),
			PlayerBin:  getEnv("AUDIO_PLAYER_BIN", "ffplay"),
		},
		Lookup: LookupConfig{
			URL:         getEnv("DATABASE_API_URL", "http://127.0.0.1:5000/get_item_position"),
			CacheTTLSec: getEnvAsInt("LOOKUP_CACHE_TTL_SEC", 300),
		},
	}

	if err := serverutils.ValidateStruct(cfg); err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
