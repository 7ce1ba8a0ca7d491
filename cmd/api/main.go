package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/config"
	"github.com/openstock/openstock-api/internal/infrastructure/database"
	"github.com/openstock/openstock-api/internal/infrastructure/repository"
	"github.com/openstock/openstock-api/internal/presentation/http/handler"
	"github.com/openstock/openstock-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the three embedded stores
	inventoryDB, err := database.NewInventoryDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open inventory store: %v", err)
	}
	hrDB, err := database.NewHRDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open HR store: %v", err)
	}
	financeDB, err := database.NewFinanceDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open finance store: %v", err)
	}

	// Inventory store repositories
	productRepo := repository.NewProductRepository(inventoryDB)
	variantRepo := repository.NewVariantRepository(inventoryDB)
	movementRepo := repository.NewStockMovementRepository(inventoryDB)
	categoryRepo := repository.NewCategoryRepository(inventoryDB)
	supplierRepo := repository.NewSupplierRepository(inventoryDB)
	taxRepo := repository.NewTaxRepository(inventoryDB)
	settingsRepo := repository.NewSettingsRepository(inventoryDB)
	priceRepo := repository.NewPriceRepository(inventoryDB)
	userRepo := repository.NewUserRepository(inventoryDB)

	// HR store repositories
	departmentRepo := repository.NewDepartmentRepository(hrDB)
	employeeRepo := repository.NewEmployeeRepository(hrDB)
	attendanceRepo := repository.NewAttendanceRepository(hrDB)
	leaveTypeRepo := repository.NewLeaveTypeRepository(hrDB)
	leaveRequestRepo := repository.NewLeaveRequestRepository(hrDB)
	payrollRepo := repository.NewPayrollRepository(hrDB)

	// Finance store repository
	financeRepo := repository.NewFinanceRepository(financeDB)

	// Initialize services
	productService := service.NewProductService(productRepo, variantRepo, priceRepo)
	stockService := service.NewStockService(productRepo, movementRepo)
	catalogService := service.NewCatalogService(categoryRepo, supplierRepo, taxRepo, settingsRepo)
	userService := service.NewUserService(userRepo)
	dashboardService := service.NewDashboardService(productRepo, movementRepo, supplierRepo)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveService := service.NewLeaveService(leaveTypeRepo, leaveRequestRepo, employeeRepo)
	payrollService := service.NewPayrollService(payrollRepo, employeeRepo)
	financeService := service.NewFinanceService(financeRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:    handler.NewProductHandler(productService),
		Stock:      handler.NewStockHandler(stockService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		User:       handler.NewUserHandler(userService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Leave:      handler.NewLeaveHandler(leaveService),
		Payroll:    handler.NewPayrollHandler(payrollService),
		Finance:    handler.NewFinanceHandler(financeService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
