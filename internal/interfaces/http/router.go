package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comercia/backoffice-api/internal/application/auth"
	"github.com/comercia/backoffice-api/internal/application/export"
	"github.com/comercia/backoffice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	ExportUC  *export.UseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Reportes (protegido: requiere Bearer Token)
	reports := api.Group("/reports", AuthMiddleware(deps.JWTSecret))
	reportHandler := NewReportHandler(deps.ExportUC, deps.Log)
	reports.Get("/restock", reportHandler.Restock)
	reports.Get("/cost-stock", reportHandler.CostStock)
	reports.Get("/stock-history", reportHandler.StockHistory)
	reports.Get("/billings", reportHandler.Billings)
	reports.Get("/customers/top", reportHandler.TopCustomers)
	reports.Get("/customers/:id/activity", reportHandler.CustomerActivity)
}
