package dependency_container

import (
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	appVersion "github.com/NeuralTrust/TrustDrift/pkg/app/version"
	"github.com/NeuralTrust/TrustDrift/pkg/config"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/judge"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/narrator"
	handlers "github.com/NeuralTrust/TrustDrift/pkg/handlers/http"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/cache"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/database"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/events"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/events/kafka"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/fetcher"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	providersFactory "github.com/NeuralTrust/TrustDrift/pkg/infra/providers/factory"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/questions"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/ratelimit"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/repository"
	"github.com/NeuralTrust/TrustDrift/pkg/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type Container struct {
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
	MetricsWorker       metrics.Worker
	EventsFanout        *events.Fanout
	Cache               cache.Client
	JWTManager          jwt.Manager
	Runner              analysis.Runner
	Suggester           analysis.Suggester
	CaseService         evalcase.Service
	UserService         user.Service
	VersionFinder       appVersion.Finder
	redisClient         *redis.Client
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	// redis is optional; without it the cache and the limiter stay in-process
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		client, err := cache.Connect(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		redisClient = client
	}
	cacheClient := cache.NewClient(redisClient, cfg.Redis.LocalTTL)

	llmClient, err := newLLMClient(cfg, logger, redisClient)
	if err != nil {
		return nil, err
	}

	// events
	locator := events.NewLocator(
		events.WithPublisher(events.LogPublisherName, events.NewLogPublisher(logger)),
		events.WithPublisher(kafka.PublisherName, kafka.NewPublisher()),
	)
	fanout := events.NewFanout(logger, locator, cfg.Events.Sinks)
	metricsWorker := metrics.NewWorker(logger, fanout)
	metricsWorker.StartWorkers(cfg.Metrics.Workers)

	// repository
	userRepository := repository.NewUserRepository(di.DB.DB)
	caseRepository := repository.NewCaseRepository(di.DB.DB)
	versionRepository := repository.NewVersionRepository(di.DB.DB)

	// scoring
	judgeAdapter := judge.NewAdapter(logger, llmClient, judge.Config{
		Model:               cfg.Judge.Model,
		MaxTokens:           cfg.Judge.MaxTokens,
		Strategies:          cfg.Judge.Strategies,
		Backoff:             cfg.Judge.Backoff,
		AttemptTimeout:      cfg.Judge.AttemptTimeout,
		HardRegressionFlags: evaluation.FlagSetFromStrings(cfg.Judge.HardRegressionFlags),
	})
	narratorClient := narrator.New(logger, llmClient, narrator.Config{
		Model:       cfg.Narrator.Model,
		Temperature: cfg.Narrator.Temperature,
		MaxTokens:   cfg.Narrator.MaxTokens,
		Timeout:     cfg.Narrator.Timeout,
	})
	pipeline := analysis.NewPipeline(cfg.Markers, judgeAdapter, narratorClient)

	questionSource := questions.NewCachedSource(
		logger,
		questions.New(logger, llmClient, questions.Config{
			Model:       cfg.Questions.Model,
			BaseURL:     cfg.Providers.BaseURL,
			Temperature: cfg.Questions.Temperature,
			MaxTokens:   cfg.Questions.MaxTokens,
			Timeout:     cfg.Questions.Timeout,
			Attempts:    cfg.Questions.Attempts,
			BackoffUnit: cfg.Questions.BackoffUnit,
		}),
		cacheClient,
		cfg.Questions.CacheTTL,
	)

	responseFetcher := fetcher.New(
		logger,
		httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Fetcher.Timeout)),
		httpx.NewBreakerRegistry(cfg.Fetcher.BreakerTimeout, cfg.Fetcher.MaxFailures),
		cfg.Fetcher.Timeout,
	)
	collector := analysis.NewCollector(logger, responseFetcher, cfg.Analysis.Throttle)

	analysisConfig := analysis.Config{
		PlatformAPIKey:   cfg.Providers.PlatformAPIKey,
		BaseURL:          cfg.Providers.BaseURL,
		Provider:         cfg.Providers.Name,
		Azure:            cfg.Providers.Azure,
		AwsBedrock:       cfg.Providers.AwsBedrock,
		DefaultCases:     cfg.Analysis.DefaultCases,
		DeepDiveMinCases: cfg.Analysis.DeepDiveMinCases,
	}

	// service
	runner := analysis.NewRunner(analysis.RunnerDeps{
		Logger:    logger,
		Users:     userRepository,
		Cases:     caseRepository,
		Versions:  versionRepository,
		Questions: questionSource,
		Collector: collector,
		Pipeline:  pipeline,
		Metrics:   metricsWorker,
		Config:    analysisConfig,
	})
	suggester := analysis.NewSuggester(logger, userRepository, pipeline, analysisConfig)
	caseService := evalcase.NewService(logger, caseRepository, versionRepository, userRepository)
	userService := user.NewService(logger, userRepository)
	versionFinder := appVersion.NewFinder(logger, versionRepository, caseRepository)

	// middleware
	var jwtManager jwt.Manager
	if cfg.Auth.SecretKey != "" {
		jwtManager = jwt.NewJwtManager(&cfg.Auth)
	} else {
		logger.Warn("auth.secret_key is empty; trusting the X-User-Id header")
	}
	middlewareTransport := middleware.Transport{
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, jwtManager),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger, metricsWorker),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			cfg.Server.CORSOrigins,
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			false,
			nil,
			"600",
		),
	}

	handlerTransport := handlers.HandlerTransport{
		// Analysis
		AnalyzeHandler:  handlers.NewAnalyzeHandler(logger, runner),
		DeepDiveHandler: handlers.NewDeepDiveHandler(logger, runner),
		SuggestHandler:  handlers.NewSuggestHandler(logger, suggester),
		// User
		InitUserHandler:            handlers.NewInitUserHandler(logger, userService),
		SaveAPIKeyHandler:          handlers.NewSaveAPIKeyHandler(logger, userService),
		GetAPIKeyStatusHandler:     handlers.NewGetAPIKeyStatusHandler(logger, userService),
		GetSubscriptionHandler:     handlers.NewGetSubscriptionHandler(logger, userService),
		UpgradeSubscriptionHandler: handlers.NewUpgradeSubscriptionHandler(logger, userService),
		// Case
		CreateCaseHandler:  handlers.NewCreateCaseHandler(logger, caseService),
		ListCasesHandler:   handlers.NewListCasesHandler(logger, caseService),
		GetCaseHandler:     handlers.NewGetCaseHandler(logger, caseService),
		UpdateCaseHandler:  handlers.NewUpdateCaseHandler(logger, caseService),
		DeleteCaseHandler:  handlers.NewDeleteCaseHandler(logger, caseService),
		ListMembersHandler: handlers.NewListMembersHandler(logger, caseService),
		AddMemberHandler:   handlers.NewAddMemberHandler(logger, caseService),
		// Version
		GetCaseVersionHandler:    handlers.NewGetCaseVersionHandler(logger, versionFinder),
		ListCaseVersionsHandler:  handlers.NewListCaseVersionsHandler(logger, versionFinder),
		LatestCaseVersionHandler: handlers.NewLatestCaseVersionHandler(logger, versionFinder),
		GetCaseTrendsHandler:     handlers.NewGetCaseTrendsHandler(logger, versionFinder),

		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	return &Container{
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
		MetricsWorker:       metricsWorker,
		EventsFanout:        fanout,
		Cache:               cacheClient,
		JWTManager:          jwtManager,
		Runner:              runner,
		Suggester:           suggester,
		CaseService:         caseService,
		UserService:         userService,
		VersionFinder:       versionFinder,
		redisClient:         redisClient,
	}, nil
}

// newLLMClient resolves the configured provider and puts the per-key rate limiter in front of it.
func newLLMClient(cfg *config.Config, logger *logrus.Logger, redisClient *redis.Client) (providers.Client, error) {
	locator := providersFactory.NewProviderLocator(
		httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Judge.AttemptTimeout)),
	)
	client, err := locator.Get(cfg.Providers.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize llm provider %q: %w", cfg.Providers.Name, err)
	}

	limitCfg := ratelimit.Config{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window}
	var limiter ratelimit.Limiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisLimiter(redisClient, limitCfg, nil, logger)
	} else {
		limiter = ratelimit.NewLocalLimiter(limitCfg, nil)
	}
	return ratelimit.NewLimitedClient(client, limiter), nil
}

// Close stops background workers and releases connections. The database is owned by the caller.
func (c *Container) Close() {
	c.MetricsWorker.Shutdown()
	c.EventsFanout.Close()
	if c.redisClient != nil {
		_ = c.redisClient.Close()
	}
}
