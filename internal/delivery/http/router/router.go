// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sitekhata/internal/delivery/http/middleware"
	"sitekhata/internal/delivery/http/router/handler"
	"sitekhata/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	SiteHandler   *handler.SiteHandler
	WorkerHandler *handler.WorkerHandler
	LedgerHandler *handler.LedgerHandler
	ReportHandler *handler.ReportHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.Use(p.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.RegisterContractor)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	// Authenticated routes shared by both roles
	authed := e.Group("", p.AuthMiddleware.Authenticate)
	{
		authed.POST("/auth/device", p.AuthHandler.RegisterDevice)

		// Worker-scope views: the usecase layer narrows workers to their own id
		authed.GET("/workers/:id", p.WorkerHandler.GetWorker)
		authed.GET("/workers/:id/balance", p.WorkerHandler.GetWorkerBalance)
		authed.GET("/workers/:id/payments", p.LedgerHandler.ListWorkerPayments)
		authed.GET("/workers/:id/summary", p.ReportHandler.GetWorkerSummary)
	}

	// Contractor-only routes
	contractor := e.Group("", p.AuthMiddleware.Authenticate,
		p.AuthMiddleware.RequireRole(entity.RoleContractor))
	{
		contractor.POST("/auth/workers", p.AuthHandler.ProvisionWorkerAccount)

		contractor.POST("/sites", p.SiteHandler.CreateSite)
		contractor.GET("/sites", p.SiteHandler.ListSites)
		contractor.GET("/sites/:id", p.SiteHandler.GetSite)
		contractor.PATCH("/sites/:id/status", p.SiteHandler.SetSiteStatus)
		contractor.GET("/sites/:id/financials", p.ReportHandler.GetSiteFinancials)
		contractor.GET("/sites/:id/attendance", p.LedgerHandler.ListSiteAttendance)
		contractor.POST("/sites/:id/expenses", p.LedgerHandler.RecordExpense)
		contractor.GET("/sites/:id/expenses", p.LedgerHandler.ListSiteExpenses)
		contractor.POST("/sites/:id/payments", p.LedgerHandler.RecordClientPayment)
		contractor.GET("/sites/:id/payments", p.LedgerHandler.ListSitePayments)

		contractor.POST("/workers", p.WorkerHandler.CreateWorker)
		contractor.GET("/workers", p.WorkerHandler.ListWorkers)
		contractor.PATCH("/workers/:id/wage", p.WorkerHandler.UpdateWorkerWage)
		contractor.POST("/workers/:id/payments", p.LedgerHandler.RecordWorkerPayment)

		contractor.POST("/attendance", p.LedgerHandler.MarkAttendance)
		contractor.GET("/payments", p.LedgerHandler.ListPayments)

		contractor.GET("/reports/portfolio", p.ReportHandler.GetPortfolioSummary)
		contractor.GET("/reports/export", p.ReportHandler.ExportLedger)
		contractor.POST("/payments/qr", p.ReportHandler.GeneratePaymentQR)
	}
}
