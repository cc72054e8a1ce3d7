package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/gestion-api/internal/application/purchasing"
	"github.com/jhoicas/gestion-api/internal/application/receivables"
	infraexcel "github.com/jhoicas/gestion-api/internal/infrastructure/excel"
	"github.com/jhoicas/gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-api/internal/interfaces/cli"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	// Los logs van a stderr para no mezclarse con la salida JSON/tabla.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: os.Stderr})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	orderUC := purchasing.NewOrderUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewPurchaseOrderRepository(pool),
		postgres.NewWarehouseEntryRepository(pool),
		postgres.NewPaymentRepository(pool),
		postgres.NewThirdPartyRepository(pool),
		postgres.NewArticleRepository(pool),
	)
	agingUC := receivables.NewAgingUseCase(invoiceRepo, nil, infraexcel.NewAgingXLSXExporter(), nil)

	root := cli.NewRootCmd(cli.Deps{Aging: agingUC, Orders: orderUC}, version)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pool.Close()
		os.Exit(1)
	}
}
