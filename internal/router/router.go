package router

import (
	"time"

	"github.com/eder5on/Estoque/internal/authz"
	"github.com/eder5on/Estoque/internal/config"
	"github.com/eder5on/Estoque/internal/handler"
	"github.com/eder5on/Estoque/internal/middleware"
	"github.com/eder5on/Estoque/internal/repository"
	"github.com/eder5on/Estoque/internal/service"
	"github.com/eder5on/Estoque/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, rdb, cfg)
	productSvc := service.NewProductService(productRepo, inventoryRepo, rdb)
	stockSvc := service.NewStockService(inventoryRepo, movementRepo, productRepo, dispatcher)
	saleSvc := service.NewSaleService(saleRepo, customerRepo, productRepo, stockSvc, dispatcher)
	rentalSvc := service.NewRentalService(rentalRepo, customerRepo, productRepo, stockSvc)
	partySvc := service.NewPartyService(customerRepo, supplierRepo, categoryRepo, companyRepo)
	reportSvc := service.NewReportService(productRepo, inventoryRepo, saleRepo, rentalRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(stockSvc)
	movementsH := handler.NewMovementsHandler(stockSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	rentalsH := handler.NewRentalsHandler(rentalSvc)
	customersH := handler.NewCustomersHandler(partySvc)
	suppliersH := handler.NewSuppliersHandler(partySvc)
	categoriesH := handler.NewCategoriesHandler(partySvc)
	companiesH := handler.NewCompaniesHandler(partySvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — store terminals, no auth required
	r.GET("/v1/price/:barcode", productsH.PriceCheck)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, rdb)
	read := middleware.RequirePermission(authz.PermRead)
	write := middleware.RequirePermission(authz.PermWrite)
	update := middleware.RequirePermission(authz.PermUpdate)
	// Writes require a management role on top of the permission: operators
	// hold write-class permissions but may not create records themselves.
	managers := middleware.RequireRole(authz.RoleAdmin, authz.RoleManager)
	adminOnly := middleware.RequireRole(authz.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)
		v1.PUT("/auth/profile", authH.UpdateProfile)

		v1.GET("/products", read, productsH.List)
		v1.GET("/products/low-stock", read, productsH.LowStock)
		v1.GET("/products/:id", read, productsH.GetByID)
		v1.GET("/products/:id/qr-code", read, productsH.QRCode)
		v1.POST("/products", managers, write, productsH.Create)
		v1.POST("/products/bulk-import", managers, write, productsH.BulkImport)
		v1.PUT("/products/:id", managers, update, productsH.Update)
		v1.DELETE("/products/:id", adminOnly, middleware.RequirePermission(authz.PermDeleteInventory), productsH.Delete)

		inv := v1.Group("/inventory")
		{
			inv.GET("", read, inventoryH.List)
			inv.POST("/entry", managers, write, inventoryH.Entry)
			inv.PUT("/:id",
				managers,
				middleware.RequirePermission(authz.PermDeleteInventory),
				middleware.AuthorizeInventory(inventoryRepo, companyRepo),
				inventoryH.Update)
		}

		v1.GET("/stock-movements", read, movementsH.List)
		v1.POST("/stock-movements", managers, write, movementsH.Create)

		sales := v1.Group("/sales")
		{
			sales.GET("", read, salesH.List)
			sales.GET("/:id", read, salesH.GetByID)
			sales.POST("", managers, middleware.RequirePermission(authz.PermManageSales), salesH.Create)
		}

		rentals := v1.Group("/rentals")
		{
			rentals.GET("", read, rentalsH.List)
			rentals.GET("/:id", read, rentalsH.GetByID)
			rentals.POST("", managers, middleware.RequirePermission(authz.PermManageRentals), rentalsH.Create)
			rentals.POST("/:id/return", managers, middleware.RequirePermission(authz.PermManageRentals), rentalsH.Return)
		}

		v1.GET("/customers", read, customersH.List)
		v1.GET("/customers/:id", read, customersH.GetByID)
		v1.POST("/customers", managers, write, customersH.Create)

		v1.GET("/suppliers", read, suppliersH.List)
		v1.GET("/suppliers/:id", read, suppliersH.GetByID)
		v1.POST("/suppliers", managers, write, suppliersH.Create)

		v1.GET("/categories", read, categoriesH.List)
		v1.POST("/categories", write, categoriesH.Create)

		reports := v1.Group("/reports", read)
		{
			reports.GET("/dashboard", reportsH.Dashboard)
			reports.GET("/kpis", reportsH.KPIs)
		}

		// Companies, locations and user management — admin only
		admin := v1.Group("", middleware.RequireRole(authz.RoleAdmin))
		{
			admin.POST("/companies", companiesH.Create)
			admin.GET("/companies", companiesH.List)
			admin.POST("/locations", companiesH.CreateLocation)
			admin.GET("/locations", companiesH.ListLocations)

			admin.GET("/users", usersH.List)
			admin.PUT("/users/:id", usersH.Update)
			admin.DELETE("/users/:id", usersH.Deactivate)
		}
	}

	// Integration surface — authenticated by API key instead of JWT.
	// Read-only catalog and price data for external systems.
	ext := r.Group("/ext/v1", middleware.APIKeyAuth(apiKeyRepo))
	{
		ext.GET("/products", productsH.List)
		ext.GET("/inventory", inventoryH.List)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
