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

	"github.com/medagenda/clinica-api/internal/application/auth"
	"github.com/medagenda/clinica-api/internal/application/billing"
	"github.com/medagenda/clinica-api/internal/application/expense"
	"github.com/medagenda/clinica-api/internal/application/inventory"
	"github.com/medagenda/clinica-api/internal/application/patient"
	"github.com/medagenda/clinica-api/internal/application/provider"
	"github.com/medagenda/clinica-api/internal/application/reports"
	"github.com/medagenda/clinica-api/internal/application/scheduling"
	infrapdf "github.com/medagenda/clinica-api/internal/infrastructure/pdf"
	"github.com/medagenda/clinica-api/internal/infrastructure/postgres"
	httpRouter "github.com/medagenda/clinica-api/internal/interfaces/http"
	"github.com/medagenda/clinica-api/pkg/config"
	"github.com/medagenda/clinica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	patientUC := patient.NewUseCase(txRunner, patientRepo)
	providerUC := provider.NewUseCase(providerRepo)
	appointmentUC := scheduling.NewUseCase(appointmentRepo, patientRepo, providerRepo)
	inventoryUC := inventory.NewStockLedgerUseCase(txRunner, itemRepo, movementRepo)
	saleUC := billing.NewSaleUseCase(txRunner, saleRepo, patientRepo)
	expenseUC := expense.NewUseCase(expenseRepo)
	reportUC := reports.NewPyGUseCase(reportRepo)

	// PDF: recibo imprimible de la venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	salePDFUC := billing.NewPDFUseCase(saleRepo, orgRepo, patientRepo, pdfGenerator)

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
		Title:    "MedAgenda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PatientUC:   patientUC,
		ProviderUC:  providerUC,
		AppointUC:   appointmentUC,
		InventoryUC: inventoryUC,
		SaleUC:      saleUC,
		SalePDFUC:   salePDFUC,
		ExpenseUC:   expenseUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
