package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/neocommerce-api/internal/application/chat"
	"github.com/jhoicas/neocommerce-api/internal/application/dashboard"
	"github.com/jhoicas/neocommerce-api/internal/application/ports"
	"github.com/jhoicas/neocommerce-api/internal/application/usecase"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/infrastructure/csvcatalog"
	"github.com/jhoicas/neocommerce-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/neocommerce-api/internal/infrastructure/pdf"
	"github.com/jhoicas/neocommerce-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/neocommerce-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/neocommerce-api/internal/interfaces/http"
	"github.com/jhoicas/neocommerce-api/pkg/config"
	"github.com/jhoicas/neocommerce-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_driver", cfg.Cache.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Snapshot del catálogo: se carga una vez y queda fijo en memoria.
	snapshot, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	productRepo, err := memory.NewProductRepository(snapshot)
	if err != nil {
		log.Fatal().Err(err).Msg("validar catálogo")
	}
	log.Info().Int("products", len(snapshot)).Msg("catálogo cargado")

	categoryRepo := memory.NewCategoryRepository(memory.SampleCategories())
	content := memory.NewStorefrontContent()
	vendorRepo := memory.NewVendorRepository()

	queryCache, closeCache := newQueryCache(ctx, cfg, log)
	defer closeCache()

	catalogUC := usecase.NewCatalogUseCase(
		productRepo, categoryRepo, queryCache, infrapdf.NewMarotoCatalogGenerator(),
		usecase.CatalogSettings{
			DefaultMaxPrice: cfg.Catalog.DefaultMaxPrice,
			PriceCeiling:    cfg.Catalog.PriceCeiling,
			Currency:        cfg.Catalog.Currency,
		},
		log.Component("catalog"),
	)
	storefrontUC := usecase.NewStorefrontUseCase(content, catalogUC, categoryRepo, log.Component("storefront"))
	contactUC := usecase.NewContactUseCase(content, log.Component("contact"))
	dashboardUC := dashboard.NewDashboardUseCase(vendorRepo, log.Component("vendor"))
	chatSvc := chat.NewService(chat.NewResponder(chat.NewPicker()), cfg.Chat.ReplyDelay, cfg.Chat.SessionIdle, log.Component("chat"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NeoCommerce API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "products": len(snapshot)})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		StorefrontUC: storefrontUC,
		ContactUC:    contactUC,
		Chat:         chatSvc,
		DashboardUC:  dashboardUC,
		Logger:       log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	chatSvc.CloseAll()

	log.Info().Msg("aplicación detenida")
}

// loadCatalog lee el snapshot desde la fuente configurada.
func loadCatalog(ctx context.Context, cfg *config.Config) ([]entity.Product, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceCSV:
		return csvcatalog.LoadFile(cfg.Catalog.CSVPath)
	case config.CatalogSourceS3:
		loader, err := csvcatalog.NewS3Loader(cfg.Catalog.S3Region)
		if err != nil {
			return nil, err
		}
		loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return loader.Load(loadCtx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Key)
	case config.CatalogSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		// El pool solo se usa para la carga inicial.
		defer pool.Close()
		return postgres.NewProductRepository(pool).List(ctx)
	default:
		return memory.SampleProducts(), nil
	}
}

// newQueryCache elige la caché de vistas. Si Redis no responde se usa la caché en memoria.
func newQueryCache(ctx context.Context, cfg *config.Config, log *logger.Logger) (ports.QueryCache, func()) {
	if cfg.Cache.Driver == config.CacheDriverRedis {
		client, err := infraredis.NewClient(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err == nil {
			return infraredis.NewQueryCache(client, cfg.Cache.TTL), func() { _ = client.Close() }
		}
		log.Warn().Err(err).Msg("redis no disponible, usando caché en memoria")
	}
	return memory.NewQueryCache(cfg.Cache.TTL), func() {}
}
