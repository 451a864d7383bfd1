package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	commercehttp "github.com/Betojr04/E-commerceAPI/internal/commerce/adapters/http"
	commercememory "github.com/Betojr04/E-commerceAPI/internal/commerce/adapters/memory"
	commerceobs "github.com/Betojr04/E-commerceAPI/internal/commerce/adapters/observability"
	commercepg "github.com/Betojr04/E-commerceAPI/internal/commerce/adapters/persistence/postgres"
	commerceapp "github.com/Betojr04/E-commerceAPI/internal/commerce/application"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
	platformobservability "github.com/Betojr04/E-commerceAPI/internal/platform/observability"
	platformpostgres "github.com/Betojr04/E-commerceAPI/internal/platform/postgres"
)

// repositories groups the per-entity stores handed to the application layer.
type repositories struct {
	users      ports.UserRepository
	categories ports.CategoryRepository
	products   ports.ProductRepository
	orders     ports.OrderRepository
}

// Run boots the commerce HTTP API with observability, repositories, and
// handlers wired.
func Run(ctx context.Context) error {
	const serviceName = "commerce-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	repos, cleanupRepos := buildRepositories(ctx, cfg, logger)
	defer cleanupRepos()

	instrumentation := commerceobs.NewInstrumentation(
		commerceobs.WithLogger(logger),
		commerceobs.WithTracer(instruments.Tracer("internal.commerce.application")),
		commerceobs.WithMeter(instruments.Meter("internal.commerce.application")),
	)
	userService := commerceobs.NewUserService(commerceapp.NewUserService(repos.users), instrumentation)
	categoryService := commerceobs.NewCategoryService(commerceapp.NewCategoryService(repos.categories), instrumentation)
	productService := commerceobs.NewProductService(commerceapp.NewProductService(repos.products, repos.categories), instrumentation)
	orderService := commerceobs.NewOrderService(commerceapp.NewOrderService(repos.orders, repos.users, repos.products), instrumentation)

	handlers := commercehttp.Handlers{
		Users:      commercehttp.NewUserAPI(userService),
		Categories: commercehttp.NewCategoryAPI(categoryService),
		Products:   commercehttp.NewProductAPI(productService),
		Orders:     commercehttp.NewOrderAPI(orderService),
	}
	router := commercehttp.NewRouter(handlers,
		otelgin.Middleware(serviceName),
		commercehttp.RequestID(),
	)

	addr := ":" + cfg.Port
	logger.Info("commerce API listening", slog.String("addr", addr), slog.String("environment", cfg.Environment))
	if err := router.Run(addr); err != nil {
		logger.Error("commerce API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (repositories, func()) {
	memoryRepos := func() (repositories, func()) {
		store := commercememory.NewStore()
		return repositories{
			users:      store.Users(),
			categories: store.Categories(),
			products:   store.Products(),
			orders:     store.Orders(),
		}, func() {}
	}

	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memoryRepos()
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memoryRepos()
	}
	if err := commercepg.Migrate(db); err != nil {
		logger.Warn("failed to run postgres migrations, falling back to memory", slog.String("error", err.Error()))
		return memoryRepos()
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memoryRepos()
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		users:      commercepg.NewUserRepository(db),
		categories: commercepg.NewCategoryRepository(db),
		products:   commercepg.NewProductRepository(db),
		orders:     commercepg.NewOrderRepository(db),
	}, func() { _ = sqlDB.Close() }
}
