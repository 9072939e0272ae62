package router

import (
	"time"

	"tallypos/internal/config"
	"tallypos/internal/handler"
	"tallypos/internal/middleware"
	"tallypos/internal/model"
	"tallypos/internal/repository"
	"tallypos/internal/service"
	"tallypos/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB, plus the session
// store shared by the auth middleware and the auth service.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, store session.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, store, cfg.SessionTTL())
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	logSvc := service.NewInventoryLogService(logRepo)
	saleSvc := service.NewSaleService(saleRepo, logRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, int(cfg.SessionTTL().Seconds()))
	usersH := handler.NewUsersHandler(userSvc)
	productsH := handler.NewProductsHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	logsH := handler.NewLogsHandler(logSvc)
	salesH := handler.NewSalesHandler(saleSvc, cfg.ReceiptStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Every /api route resolves the caller's identity (cookie first, then
	// bearer token); authorization floors are declared per endpoint.
	api := r.Group("/api", middleware.Session(store))
	{
		api.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		api.POST("/logout", authH.Logout)
		api.GET("/me", authH.Me)

		read := middleware.RequireRole(model.RoleViewer)
		write := middleware.RequireRole(model.RoleWriter)
		admin := middleware.RequireRole(model.RoleAdmin)

		sales := api.Group("/sales")
		{
			sales.GET("", read, salesH.List)
			sales.GET("/:id", read, salesH.Get)
			sales.GET("/:id/receipt", read, salesH.Receipt)
			sales.POST("", write, salesH.Create)
			sales.PATCH("/:id", write, salesH.Update)
			sales.DELETE("/:id", admin, salesH.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", read, productsH.List)
			products.GET("/:id", read, productsH.Get)
			products.POST("", write, productsH.Create)
			products.PUT("/:id", write, productsH.Update)
			products.DELETE("/:id", admin, productsH.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", read, categoriesH.List)
			categories.GET("/:id", read, categoriesH.Get)
			categories.POST("", write, categoriesH.Create)
			categories.PUT("/:id", write, categoriesH.Update)
			categories.DELETE("/:id", admin, categoriesH.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", read, customersH.List)
			customers.GET("/:id", read, customersH.Get)
			customers.POST("", write, customersH.Create)
			customers.PUT("/:id", write, customersH.Update)
			customers.DELETE("/:id", admin, customersH.Delete)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", read, logsH.List)
			logs.GET("/:id", read, logsH.Get)
			logs.POST("", write, logsH.Create)
			logs.PUT("/:id", write, logsH.Update)
			logs.DELETE("/:id", admin, logsH.Delete)
		}

		// User administration is admin-only across the board.
		users := api.Group("/users", admin)
		{
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.POST("", usersH.Create)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}
	}

	return r
}
