package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/gestion-api/internal/application/analytics"
	"github.com/jhoicas/gestion-api/internal/application/purchasing"
	"github.com/jhoicas/gestion-api/internal/application/receivables"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/gestion-api/internal/infrastructure/excel"
	infralock "github.com/jhoicas/gestion-api/internal/infrastructure/lock"
	infrapdf "github.com/jhoicas/gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-api/internal/interfaces/http"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Bloqueo distribuido opcional: sin REDIS_ADDR solo se usa el bloqueo de fila.
	var locker purchasing.OrderLocker
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no responde; se continúa sin bloqueo distribuido")
		} else {
			locker = infralock.NewRedisLocker(rdb, time.Duration(cfg.Redis.LockTTLSeconds)*time.Second)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("bloqueo distribuido con redis")
		}
	}

	articleRepo := postgres.NewArticleRepository(pool)
	thirdPartyRepo := postgres.NewThirdPartyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	entryRepo := postgres.NewWarehouseEntryRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderUC := purchasing.NewOrderUseCase(txRunner, orderRepo, entryRepo, paymentRepo, thirdPartyRepo, articleRepo)
	paymentUC := purchasing.NewPaymentUseCase(txRunner, locker, orderRepo, paymentRepo)
	receptionUC := purchasing.NewReceptionUseCase(txRunner, locker, orderRepo, entryRepo, warehouseRepo)

	agingUC := receivables.NewAgingUseCase(
		invoiceRepo,
		infrapdf.NewAgingPDFGenerator(cfg.Reports.CompanyName),
		infraexcel.NewAgingXLSXExporter(),
		nil,
	)
	invoiceUC := receivables.NewInvoiceUseCase(invoiceRepo, thirdPartyRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Articles:     usecase.NewArticleUseCase(articleRepo),
		ThirdParties: usecase.NewThirdPartyUseCase(thirdPartyRepo, cfg.App.PhoneRegion),
		Warehouses:   usecase.NewWarehouseUseCase(warehouseRepo),
		Orders:       orderUC,
		Payments:     paymentUC,
		Reception:    receptionUC,
		Aging:        agingUC,
		Invoices:     invoiceUC,
		Dashboard:    dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
