package routes

import (
	"context"
	"fmt"

	"hotel_procurement/internal/adapter/persistence/memory"
	"hotel_procurement/internal/adapter/persistence/repository"
	"hotel_procurement/internal/config"
	"hotel_procurement/internal/domain/workflow"
	"hotel_procurement/internal/infrastructure/ai"
	"hotel_procurement/internal/infrastructure/auth"
	"hotel_procurement/internal/infrastructure/cache"
	"hotel_procurement/internal/infrastructure/database"
	"hotel_procurement/internal/infrastructure/locking"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/infrastructure/messaging"
	"hotel_procurement/internal/infrastructure/reporting"
	"hotel_procurement/internal/infrastructure/storage"
	"hotel_procurement/internal/usecase"
	"hotel_procurement/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

type repositories struct {
	requests  interfaces.IPurchaseRequestRepository
	catalog   interfaces.ICatalogRepository
	suppliers interfaces.ISupplierRepository
	commits   interfaces.IReconciliationRepository
	users     interfaces.IUserRepository
	roles     interfaces.IRoleRepository
	branches  interfaces.IBranchRepository
}

// gateway is implemented by both the OpenAI and the offline gateway.
type gateway interface {
	interfaces.IInvoiceAnalyzer
	interfaces.ISupplierAdvisor
	interfaces.IReportWriter
}

// UseCases is everything the router needs.
type UseCases struct {
	Requests usecase.IPurchaseRequestUseCase
	Invoices usecase.IInvoiceUseCase
	Queries  usecase.IQueryUseCase
	Registry usecase.IRegistryUseCase
	Reports  usecase.IReportUseCase
	Admin    usecase.IAdminUseCase
	Auth     usecase.IAuthUseCase
}

// buildUseCases connects the configured backends. The returned func releases
// clients that hold connections.
func buildUseCases(ctx context.Context, cfg config.Config) (UseCases, func(), error) {
	log := logging.GetLogger()
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (UseCases, func(), error) {
		cleanup()
		return UseCases{}, func() {}, err
	}

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		return fail(err)
	}

	var (
		locker   interfaces.IKeyLocker    = locking.NewLocalLocker()
		previews interfaces.IPreviewStore = cache.NewMemoryPreviewStore()
	)
	if cfg.RedisAddress != "" {
		rdb, lockClient, err := database.ConnectRedis(ctx, cfg.RedisAddress)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		locker = locking.NewRedisLocker(lockClient)
		previews = cache.NewRedisPreviewStore(rdb)
	} else {
		log.Warn("[routes][wiring] REDIS_ADDRESS not set, using in-process locks and preview cache")
	}

	var blobs interfaces.IBlobStore = storage.NewMemoryBlobStore()
	if cfg.GCSBucket != "" {
		client, err := storage.NewGCSClient(ctx)
		if err != nil {
			return fail(fmt.Errorf("gcs client: %w", err))
		}
		closers = append(closers, func() { _ = client.Close() })
		blobs = storage.NewGCSBlobStore(client, cfg.GCSBucket)
	} else {
		log.Warn("[routes][wiring] GCS_BUCKET not set, documents are kept in memory")
	}

	var events interfaces.IEventPublisher = messaging.LogPublisher{}
	if cfg.PubSubTopic != "" {
		client, err := messaging.NewClient(ctx, messaging.ProjectID(cfg.PubSubProjectID))
		if err != nil {
			return fail(fmt.Errorf("pubsub client: %w", err))
		}
		publisher := messaging.NewPubSubPublisher(client, cfg.PubSubTopic)
		closers = append(closers, func() {
			publisher.Stop()
			_ = client.Close()
		})
		events = publisher
	}

	var ag gateway
	if cfg.AIMock {
		log.Warn("[routes][wiring] AI mock mode enabled")
		ag = ai.NewMockGateway()
	} else {
		ag = ai.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	engine := workflow.NewEngine(cfg.EscalationThreshold)

	adminUseCase := usecase.NewAdminUseCase(repos.users, repos.roles, repos.branches, hasher)
	if err := adminUseCase.Bootstrap(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fail(fmt.Errorf("bootstrap: %w", err))
	}

	ucs := UseCases{
		Requests: usecase.NewPurchaseRequestUseCase(repos.requests, repos.branches, blobs, events, engine),
		Invoices: usecase.NewInvoiceUseCase(usecase.InvoiceDeps{
			Requests:  repos.requests,
			Catalog:   repos.catalog,
			Suppliers: repos.suppliers,
			Commits:   repos.commits,
			Previews:  previews,
			Blobs:     blobs,
			Locker:    locker,
			Analyzer:  ag,
			Events:    events,
		}, engine, usecase.InvoiceUseCaseConfig{AITimeout: cfg.AITimeout, PreviewTTL: cfg.PreviewTTL}),
		Queries:  usecase.NewQueryUseCase(repos.requests, cfg.CompletionActions),
		Registry: usecase.NewRegistryUseCase(repos.catalog, repos.suppliers, locker, ag, cfg.AITimeout),
		Reports:  usecase.NewReportUseCase(repos.requests, repos.branches, ag, reporting.ExcelExporter{}, cfg.AITimeout),
		Admin:    adminUseCase,
		Auth:     usecase.NewAuthUseCase(repos.users, tokens, hasher),
	}
	return ucs, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageBackend == config.StorageMemory {
		logging.GetLogger().Warn("[routes][wiring] STORAGE_BACKEND=memory, data is lost on restart")
		store := memory.NewStore(cfg.ReferenceNumberStart)
		return repositories{
			requests:  memory.NewPurchaseRequestRepository(store),
			catalog:   memory.NewCatalogRepository(store),
			suppliers: memory.NewSupplierRepository(store),
			commits:   memory.NewReconciliationRepository(store),
			users:     memory.NewUserRepository(store),
			roles:     memory.NewRoleRepository(store),
			branches:  memory.NewBranchRepository(store),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return repositories{}, fmt.Errorf("dynamodb: %w", err)
	}
	t := cfg.Tables
	requests := repository.NewPurchaseRequestDynamoRepository(ddb, t.PurchaseRequests, t.Counters, cfg.ReferenceNumberStart)
	return repositories{
		requests:  requests,
		catalog:   repository.NewCatalogDynamoRepository(ddb, t.Catalog),
		suppliers: repository.NewSupplierDynamoRepository(ddb, t.Suppliers),
		commits:   repository.NewReconciliationDynamoRepository(ddb, requests, t.Catalog, t.Suppliers),
		users:     repository.NewUserDynamoRepository(ddb, t.Users),
		roles:     repository.NewRoleDynamoRepository(ddb, t.Roles),
		branches:  repository.NewBranchDynamoRepository(ddb, t.Branches),
	}, nil
}
