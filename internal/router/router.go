package router

import (
	"context"
	"time"

	"agencyledger/internal/config"
	"agencyledger/internal/handler"
	"agencyledger/internal/infra"
	"agencyledger/internal/middleware"
	"agencyledger/internal/repository"
	"agencyledger/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const loginAttemptsPerMinute = 10

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// ctx bounds background janitors such as the in-memory rate limiter.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	passAmount, err := cfg.PassCharge()
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware chain (order matters)
	var limiter middleware.LimiterStore
	if rdb != nil {
		limiter = middleware.NewRedisStore(rdb)
	} else {
		limiter = middleware.NewMemoryStore(ctx)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorDetail(cfg.IsDevelopment()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(limiter, "api", cfg.RateLimitPerMinute, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	renderer := infra.NewBillPDFRenderer(cfg.PDFStoragePath, cfg.BusinessName, loc)

	// ── Repositories ─────────────────────────────────────────────────────────
	materialRepo := repository.NewMaterialRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	billRepo := repository.NewBillRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	materialSvc := service.NewMaterialService(materialRepo)
	ownerSvc := service.NewOwnerService(ownerRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo, ownerRepo, nil)
	billSvc := service.NewBillService(billRepo, materialRepo, ownerRepo, vehicleRepo, renderer, service.BillSettings{
		PassAmount: passAmount,
		Location:   loc,
	})
	transactionSvc := service.NewTransactionService(transactionRepo, billRepo, materialRepo, ownerRepo, nil)
	paymentSvc := service.NewPaymentService(paymentRepo, ownerRepo, loc, nil)
	ledgerSvc := service.NewLedgerService(ledgerRepo, ownerRepo)
	reportSvc := service.NewReportService(ledgerRepo, loc, nil)
	authSvc := service.NewAuthService(operatorRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	materialsH := handler.NewMaterialsHandler(materialSvc)
	ownersH := handler.NewOwnersHandler(ownerSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	billsH := handler.NewBillsHandler(billSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc, paymentSvc, ownerSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	authH := handler.NewAuthHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.RateLimiter(limiter, "login", loginAttemptsPerMinute, time.Minute), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Bearer tokens are only required when a signing secret is configured.
	api := r.Group("/api")
	if cfg.AuthEnabled() {
		api.Use(middleware.JWTAuth(cfg.JWTSecret))
		api.GET("/auth/me", authH.Me)
	}
	{
		api.GET("/materials", materialsH.List)
		api.POST("/materials", materialsH.Create)
		api.PUT("/materials/:id", materialsH.Update)
		api.PATCH("/materials/:id/active", materialsH.SetActive)

		api.GET("/owners", ownersH.List)
		api.POST("/owners", ownersH.Create)
		api.GET("/owners/:ownerId", ownersH.Get)
		api.PUT("/owners/:ownerId", ownersH.Update)
		api.PATCH("/owners/:ownerId/active", ownersH.SetActive)
		api.GET("/owners/:ownerId/ledger", ledgerH.Ledger)
		api.GET("/owners/:ownerId/ledger/export", ledgerH.Export)
		api.POST("/owners/:ownerId/payments", ledgerH.RecordPayment)

		api.GET("/vehicles", vehiclesH.Suggest)
		api.POST("/vehicles", vehiclesH.Create)
		api.DELETE("/vehicles/:id", vehiclesH.Delete)

		api.POST("/transactions", transactionsH.Create)
		api.PUT("/transactions/:id", transactionsH.Update)
		api.DELETE("/transactions/:id", transactionsH.Delete)

		api.POST("/bills", billsH.Create)
		api.GET("/bills", billsH.List)
		api.GET("/bills/:id", billsH.Get)
		api.GET("/bills/:id/download", billsH.Download)
		api.POST("/bills/:id/document", billsH.Regenerate)

		api.GET("/reports/owners-summary", reportsH.OwnersSummary)
		api.GET("/reports/owners-summary/export", reportsH.ExportOwnersSummary)
		api.GET("/weekly-reports", reportsH.Weekly)
		api.GET("/weekly-reports/export", reportsH.ExportWeekly)
	}

	// Swagger UI, only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
