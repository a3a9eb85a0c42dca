package bootstrap

import (
	"log"
	"time"

	"shelf-assist-be/internal/config"
	"shelf-assist-be/internal/controller"
	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/internal/repository/memory"
	"shelf-assist-be/internal/service"
	"shelf-assist-be/pkg/detector"
	speechFactory "shelf-assist-be/pkg/speech/factory"
	"shelf-assist-be/pkg/vision"
	"shelf-assist-be/pkg/voice"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const announceTopic = "FEEDBACK_ANNOUNCE"

type Container struct {
	// Controllers
	UploadController controller.IUploadController

	// Background Services (Exposed for main.go to run)
	FeedbackService service.IFeedbackService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus (announcement queue, one consumer)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Collaborators
	synth := voice.NewHTTPSynthesizer(cfg.Voice.TTSBaseURL)
	player := voice.NewExecPlayer(cfg.Voice.PlayerBin)

	det := detector.NewHTTPProvider(cfg.Detector.URL, cfg.Detector.APIKey, cfg.Detector.ModelID)

	registry := vision.NewRegistry(vision.NewHTTPLoader(cfg.Vision.BaseURL))
	// The product model is the startup-phase load; the currency model stays
	// lazy until the first mode switch or detection.
	if err := registry.Warm(cfg.Vision.ProductModel); err != nil {
		log.Printf("[WARN] Product model not warmed, will retry lazily: %v", err)
	}

	transcriber, err := speechFactory.NewTranscriber(cfg.Speech.Provider, cfg.Speech.ServerURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize speech provider: %v", err)
	}
	log.Printf("[INFO] Using Speech Provider: %s", cfg.Speech.Provider)

	// 4. Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	feedbackService := service.NewFeedbackService(pubSub, announceTopic, synth, player, sysLogger)
	lookupService := service.NewLookupService(
		cfg.Lookup.URL,
		time.Duration(cfg.Lookup.CacheTTLSec)*time.Second,
		feedbackService,
		sysLogger,
	)
	modeService := service.NewModeService(registry, cfg.Vision.CurrencyModel, feedbackService, sysLogger)
	extractionService := service.NewExtractionService(cfg.App.UploadDir, det, sessionRepo, sysLogger)
	currencyService := service.NewCurrencyService(registry, cfg.Vision.CurrencyModel, feedbackService, sysLogger)
	transcriptionService := service.NewTranscriptionService(cfg.App.UploadDir, transcriber, cfg.Speech.Language, sysLogger)
	matchingService := service.NewMatchingService(registry, cfg.Vision.ProductModel, lookupService, sysLogger)

	// 6. Controllers
	uploadController := controller.NewUploadController(
		modeService,
		extractionService,
		currencyService,
		transcriptionService,
		matchingService,
		feedbackService,
		sessionRepo,
	)

	return &Container{
		UploadController: uploadController,
		FeedbackService:  feedbackService,
		Logger:           sysLogger,
	}
}
