package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/clinica-api/internal/application/auth"
	"github.com/medagenda/clinica-api/internal/application/billing"
	"github.com/medagenda/clinica-api/internal/application/expense"
	"github.com/medagenda/clinica-api/internal/application/inventory"
	"github.com/medagenda/clinica-api/internal/application/patient"
	"github.com/medagenda/clinica-api/internal/application/provider"
	"github.com/medagenda/clinica-api/internal/application/reports"
	"github.com/medagenda/clinica-api/internal/application/scheduling"
	"github.com/medagenda/clinica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PatientUC   *patient.UseCase
	ProviderUC  *provider.UseCase
	AppointUC   *scheduling.UseCase
	InventoryUC *inventory.StockLedgerUseCase
	SaleUC      *billing.SaleUseCase
	SalePDFUC   *billing.PDFUseCase
	ExpenseUC   *expense.UseCase
	ReportUC    *reports.PyGUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Patients (protegido)
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC)
	appointmentHandler := NewAppointmentHandler(deps.AppointUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/duplicates", patientHandler.Duplicates)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)
	patients.Get("/:id/appointments", appointmentHandler.ListByPatient)

	// Providers (protegido)
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", providerHandler.Create)
	providers.Get("/", providerHandler.List)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Patch("/:id/status", appointmentHandler.UpdateStatus)

	// Inventory (protegido; crear ítems solo admin)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/items", adminOnly, inventoryHandler.CreateItem)
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Get("/items/:id", inventoryHandler.GetItem)
	invGroup.Post("/items/:id/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/items/:id/movements", inventoryHandler.ListMovements)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SalePDFUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/pdf", saleHandler.DownloadPDF)

	// Expenses (protegido, solo admin)
	expenses := protected.Group("/expenses", adminOnly)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Reports (protegido, solo admin)
	reportsGroup := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/pyg", reportHandler.PyG)
}
