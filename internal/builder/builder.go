package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tractis/proposal-engine/internal/agent"
	"github.com/tractis/proposal-engine/internal/api"
	proposalapi "github.com/tractis/proposal-engine/internal/api/proposal"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/integration/branding"
	"github.com/tractis/proposal-engine/internal/integration/extraction"
	"github.com/tractis/proposal-engine/internal/integration/llm"
	"github.com/tractis/proposal-engine/internal/pkg/formatter"
	"github.com/tractis/proposal-engine/internal/pkg/validator"
	"github.com/tractis/proposal-engine/internal/repository"
	"github.com/tractis/proposal-engine/internal/session"
	"github.com/tractis/proposal-engine/internal/usecase/proposal"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Database is optional; without it finished proposals are not archived.
	var db *pgxpool.Pool
	var archive proposal.Archive
	if cfg.DatabaseURL != "" {
		db, err = setupDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup database: %w", err)
		}

		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		archive = repository.NewProposalRepository(db)
	} else {
		logger.Info("DATABASE_URL not set, proposal archiving disabled")
	}

	// LLM clients and external connectors (with mock support)
	var parserClient, chatClient agent.ChatClient
	var extractionConnector proposal.ExtractionConnector
	var brandingConnector proposal.BrandingConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		parserClient = llm.NewMockClient(entity.StageParser, logger)
		chatClient = llm.NewMockClient(entity.StageEnrichment, logger)
		extractionConnector = extraction.NewMockConnector(logger)
		brandingConnector = branding.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		parserClient = llm.NewOpenAIClient(cfg.ParserLLMCfg, logger)
		chatClient = llm.NewAnthropicClient(cfg.ChatLLMCfg, logger)
		extractionConnector = extraction.NewConnector(cfg.ExtractionConnectorCfg, logger)
		brandingConnector = branding.NewConnector(cfg.BrandingConnectorCfg, logger)
	}

	// Designer shares the conversational provider, except in mock mode where
	// it needs designer-shaped output.
	designerClient := chatClient
	if cfg.EnableMocks {
		designerClient = llm.NewMockClient(entity.StageDesigner, logger)
	}

	// Agents
	parserAgent := agent.NewParser(parserClient, logger)
	enrichmentAgent := agent.NewEnrichment(chatClient, cfg.LimitsCfg.MaxTranscriptChars, logger)
	designerAgent := agent.NewDesigner(designerClient, logger)
	logger.Info("Agents initialized")

	// Session store
	sessions := session.NewStore(cfg.SessionCfg)
	logger.Info("Session store initialized",
		zap.Duration("ttl", cfg.SessionCfg.TTL),
		zap.Duration("sweep_interval", cfg.SessionCfg.SweepInterval),
	)

	// Validators
	inputValidator := validator.NewValidator(cfg.LimitsCfg)

	// Use case
	proposalUC := proposal.NewUsecase(
		parserAgent,
		enrichmentAgent,
		designerAgent,
		sessions,
		archive,
		extractionConnector,
		brandingConnector,
		inputValidator,
		logger,
	)
	logger.Info("Use cases initialized")

	// API handlers
	proposalHandler := proposalapi.NewHandler(proposalUC, formatter.NewFactory())
	logger.Info("API handlers initialized")

	// Router
	router := api.SetupRouter(proposalHandler, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 320 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:   server,
		db:       db,
		sessions: sessions,
		logger:   logger,
	}, nil
}
