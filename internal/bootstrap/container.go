package bootstrap

import (
	"context"
	"log"

	"edge-journal-be/internal/config"
	"edge-journal-be/internal/controller"
	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/internal/repository/memory"
	"edge-journal-be/internal/repository/redisstore"
	"edge-journal-be/internal/repository/unitofwork"
	"edge-journal-be/internal/service"
	"edge-journal-be/pkg/asr"
	"edge-journal-be/pkg/embedding"
	"edge-journal-be/pkg/journal"
	"edge-journal-be/pkg/llm/factory"
	"edge-journal-be/pkg/ocr"

	pktNats "edge-journal-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	JournalController   controller.IJournalController
	EventController     controller.IEventController
	AssistantController controller.IAssistantController
	CaptureController   controller.ICaptureController

	// Background Services (Exposed for main.go to run)
	JournalConsumerService service.IJournalConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LMStudioBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Inference sidecars
	ocrEngine := ocr.NewSidecarEngine(cfg.Ai.OCRBaseURL)
	asrEngine := asr.NewSidecarEngine(cfg.Ai.ASRBaseURL)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Entry store backend: memory by default, Redis when the journal must
	// survive a backend restart.
	var entryStore journal.EntryStore
	if cfg.Journal.CacheBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		entryStore = redisstore.NewJournalCache(rdb, cfg.Journal.CacheTTL, sysLogger)
		log.Printf("[INFO] Using Journal Entry Store: REDIS")
	} else {
		entryStore = memory.NewJournalCache(cfg.Journal.CacheTTL)
		log.Printf("[INFO] Using Journal Entry Store: MEMORY")
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Journal.Topic, pubSub)
	eventService := service.NewEventService(uowFactory)
	indexerService := service.NewIndexerService(uowFactory, embeddingProvider, sysLogger)
	searchService := service.NewSearchService(uowFactory, embeddingProvider, sysLogger)

	runner := journal.NewRunner(
		indexerService,
		eventService,
		searchService,
		llmProvider,
		entryStore,
		journal.Config{
			TopK:          cfg.Journal.TopK,
			MinSimilarity: cfg.Journal.MinSimilarity,
			GenTimeout:    cfg.Journal.GenTimeout,
		},
		sysLogger,
	)

	journalService := service.NewJournalService(publisherService, entryStore, natsPub, sysLogger)
	journalConsumerService := service.NewJournalConsumerService(
		cfg.Journal.Topic,
		pubSub,
		runner,
		entryStore,
		natsPub,
		sysLogger,
	)
	assistantService := service.NewAssistantService(llmProvider, sysLogger)
	captureService := service.NewCaptureService(
		ocrEngine,
		asrEngine,
		eventService,
		cfg.App.RecordingsDir,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		JournalController:   controller.NewJournalController(journalService),
		EventController:     controller.NewEventController(eventService),
		AssistantController: controller.NewAssistantController(assistantService),
		CaptureController:   controller.NewCaptureController(captureService),

		JournalConsumerService: journalConsumerService,
	}
}
