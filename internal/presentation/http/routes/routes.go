package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/config"
	"github.com/openstock/openstock-api/internal/presentation/http/handler"
	"github.com/openstock/openstock-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product    *handler.ProductHandler
	Stock      *handler.StockHandler
	Catalog    *handler.CatalogHandler
	User       *handler.UserHandler
	Dashboard  *handler.DashboardHandler
	Employee   *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	Leave      *handler.LeaveHandler
	Payroll    *handler.PayrollHandler
	Finance    *handler.FinanceHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerInventoryRoutes(v1, h)
		registerHRRoutes(v1, h)
		registerFinanceRoutes(v1, h)
	}

	return router
}

func registerInventoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	// Dashboard
	v1.GET("/dashboard", h.Dashboard.GetStats)

	// Settings
	v1.GET("/settings", h.Catalog.GetSettings)
	v1.PUT("/settings", h.Catalog.UpdateSettings)

	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)

		products.GET("/:id/variants", h.Product.ListVariants)
		products.POST("/:id/variants", h.Product.CreateVariant)

		products.GET("/:id/supplier-prices", h.Product.ListSupplierPrices)
		products.POST("/:id/supplier-prices", h.Product.CreateSupplierPrice)
		products.GET("/:id/selling-prices", h.Product.ListSellingPrices)
	}

	variants := v1.Group("/variants")
	{
		variants.PUT("/:variant_id", h.Product.UpdateVariant)
		variants.DELETE("/:variant_id", h.Product.DeleteVariant)
	}

	supplierPrices := v1.Group("/supplier-prices")
	{
		supplierPrices.PUT("/:price_id", h.Product.UpdateSupplierPrice)
		supplierPrices.DELETE("/:price_id", h.Product.DeleteSupplierPrice)
	}

	stock := v1.Group("/stock-movements")
	{
		stock.GET("", h.Stock.ListMovements)
		stock.POST("", h.Stock.CreateMovement)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", h.Catalog.ListCategories)
		categories.POST("", h.Catalog.CreateCategory)
		categories.PUT("/:id", h.Catalog.UpdateCategory)
		categories.DELETE("/:id", h.Catalog.DeleteCategory)
	}

	suppliers := v1.Group("/suppliers")
	{
		suppliers.GET("", h.Catalog.ListSuppliers)
		suppliers.POST("", h.Catalog.CreateSupplier)
		suppliers.GET("/:id", h.Catalog.GetSupplier)
		suppliers.PUT("/:id", h.Catalog.UpdateSupplier)
		suppliers.DELETE("/:id", h.Catalog.DeleteSupplier)
	}

	taxes := v1.Group("/taxes")
	{
		taxes.GET("", h.Catalog.ListTaxes)
		taxes.POST("", h.Catalog.CreateTax)
		taxes.PUT("/:id", h.Catalog.UpdateTax)
		taxes.DELETE("/:id", h.Catalog.DeleteTax)
	}

	users := v1.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerHRRoutes(v1 *gin.RouterGroup, h *Handlers) {
	hr := v1.Group("/hr")

	departments := hr.Group("/departments")
	{
		departments.GET("", h.Employee.ListDepartments)
		departments.POST("", h.Employee.CreateDepartment)
		departments.PUT("/:id", h.Employee.UpdateDepartment)
		departments.DELETE("/:id", h.Employee.DeleteDepartment)
	}

	employees := hr.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
	}

	attendance := hr.Group("/attendance")
	{
		attendance.GET("", h.Attendance.List)
		attendance.POST("", h.Attendance.Create)
		attendance.PUT("/:id", h.Attendance.Update)
		attendance.POST("/clock-in", h.Attendance.ClockIn)
		attendance.POST("/clock-out", h.Attendance.ClockOut)
	}

	leaveTypes := hr.Group("/leave-types")
	{
		leaveTypes.GET("", h.Leave.ListTypes)
		leaveTypes.POST("", h.Leave.CreateType)
		leaveTypes.PUT("/:id", h.Leave.UpdateType)
		leaveTypes.DELETE("/:id", h.Leave.DeleteType)
	}

	leaveRequests := hr.Group("/leave-requests")
	{
		leaveRequests.GET("", h.Leave.ListRequests)
		leaveRequests.POST("", h.Leave.CreateRequest)
		leaveRequests.PUT("/:id/status", h.Leave.UpdateRequestStatus)
	}

	periods := hr.Group("/payroll-periods")
	{
		periods.GET("", h.Payroll.ListPeriods)
		periods.POST("", h.Payroll.CreatePeriod)
		periods.GET("/:id", h.Payroll.GetPeriod)
		periods.PUT("/:id", h.Payroll.UpdatePeriod)
		periods.POST("/:id/generate", h.Payroll.Generate)
	}

	runs := hr.Group("/payroll-runs")
	{
		runs.GET("", h.Payroll.ListRuns)
		runs.POST("", h.Payroll.CreateRun)
		runs.PUT("/:id/status", h.Payroll.UpdateRunStatus)
	}
}

func registerFinanceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	finance := v1.Group("/finance")

	finance.GET("/summary", h.Finance.Summary)

	transactions := finance.Group("/transactions")
	{
		transactions.GET("", h.Finance.ListTransactions)
		transactions.POST("", h.Finance.CreateTransaction)
		transactions.DELETE("/:id", h.Finance.DeleteTransaction)
	}

	crossBorder := finance.Group("/cross-border")
	{
		crossBorder.GET("", h.Finance.ListCrossBorder)
		crossBorder.POST("", h.Finance.CreateCrossBorder)
	}

	forex := finance.Group("/forex")
	{
		forex.GET("", h.Finance.ListForex)
		forex.POST("", h.Finance.CreateForex)
	}

	crypto := finance.Group("/crypto")
	{
		crypto.GET("", h.Finance.ListCrypto)
		crypto.POST("", h.Finance.CreateCrypto)
	}
}
