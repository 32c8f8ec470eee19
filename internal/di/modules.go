package di

import (
	"log"

	"askdb-ai/config"
	"askdb-ai/internal/apis/handlers"
	"askdb-ai/internal/constants"
	"askdb-ai/internal/services"
	"askdb-ai/pkg/dbmanager"
	"askdb-ai/pkg/llm"

	"go.uber.org/dig"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	// Provide the SQLite driver for the single database file
	if err := DiContainer.Provide(func() *dbmanager.SQLiteDriver {
		return dbmanager.NewSQLiteDriver(config.Env.SQLitePath)
	}); err != nil {
		log.Fatalf("Failed to provide SQLite driver: %v", err)
	}

	// Add LLM Manager with the configured default client. The client's model
	// and credential are fixed here for the process lifetime.
	if err := DiContainer.Provide(func() *llm.Manager {
		manager := llm.NewManager()

		switch config.Env.DefaultLLMClient {
		case constants.Gemini:
			if err := manager.RegisterClient(constants.Gemini, llm.Config{
				Provider:            constants.Gemini,
				Model:               config.Env.GeminiModel,
				APIKey:              config.Env.GeminiAPIKey,
				MaxCompletionTokens: config.Env.GeminiMaxCompletionTokens,
				Temperature:         config.Env.GeminiTemperature,
			}); err != nil {
				log.Fatalf("Failed to register Gemini client: %v", err)
			}
		case constants.OpenAI:
			if err := manager.RegisterClient(constants.OpenAI, llm.Config{
				Provider:            constants.OpenAI,
				Model:               config.Env.OpenAIModel,
				APIKey:              config.Env.OpenAIAPIKey,
				MaxCompletionTokens: config.Env.OpenAIMaxCompletionTokens,
				Temperature:         config.Env.OpenAITemperature,
			}); err != nil {
				log.Fatalf("Failed to register OpenAI client: %v", err)
			}
		default:
			log.Fatalf("Unsupported default LLM client: %s", config.Env.DefaultLLMClient)
		}
		return manager
	}); err != nil {
		log.Fatalf("Failed to provide LLM manager: %v", err)
	}

	// Provide services
	if err := DiContainer.Provide(func(manager *llm.Manager, driver *dbmanager.SQLiteDriver) (services.QueryService, error) {
		client, err := manager.GetClient(config.Env.DefaultLLMClient)
		if err != nil {
			return nil, err
		}
		return services.NewQueryService(client, driver), nil
	}); err != nil {
		log.Fatalf("Failed to provide query service: %v", err)
	}

	// Provide handlers
	if err := DiContainer.Provide(func(queryService services.QueryService) *handlers.QueryHandler {
		return handlers.NewQueryHandler(queryService)
	}); err != nil {
		log.Fatalf("Failed to provide query handler: %v", err)
	}
}

func GetQueryHandler() (*handlers.QueryHandler, error) {
	var queryHandler *handlers.QueryHandler
	err := DiContainer.Invoke(func(h *handlers.QueryHandler) {
		queryHandler = h
	})
	if err != nil {
		return nil, err
	}
	return queryHandler, nil
}
