package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-pizza-orders/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-orders/internal/config"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config

	flavourService  services.FlavourService
	pizzaService    services.PizzaService
	customerService services.CustomerService
	orderService    services.OrderService
)

// @title Pizza Orders API
// @version 1.0
// @description Orders of pizzas composed of flavours, with prices derived from composition and size.
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	applyLogLevel(configuration)

	// Initialize database connection
	db = setupDatabase(configuration)

	// Initialize services
	flavourService = services.NewFlavourService(db)
	pizzaService = services.NewPizzaService(db)
	customerService = services.NewCustomerService(db)
	orderService = services.NewOrderService(db)

	if configuration.SeedDB {
		seedDatabase()
	}

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}

// applyLogLevel propagates the configured level to the package loggers
func applyLogLevel(conf *config.Config) {
	level := config.LevelForEnvironment(conf.Environment)
	if conf.LogLevel != "" {
		parsed, err := log.ParseLevel(conf.LogLevel)
		checkPanicErr(err)
		level = parsed
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)
	checkPanicErr(database.Migrate(conn))
	return conn
}

// seedDatabase creates a small menu and a first order when the database is empty
func seedDatabase() {
	var count int64
	checkPanicErr(db.Model(&models.Flavour{}).Count(&count).Error)
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return
	}

	log.Info("Database is empty, seeding initial data")
	var flavourIDs []uint
	for _, f := range []struct {
		name  string
		price uint
	}{{"Mozzarella", 5}, {"Pepperoni", 8}, {"Basil", 2}} {
		name, price := f.name, f.price
		flavour, err := flavourService.CreateFlavour(models.FlavourCreateRequest{Name: &name, AddedPrice: &price})
		checkPanicErr(err)
		flavourIDs = append(flavourIDs, flavour.ID)
	}

	size := models.SizeXL
	pizza, err := pizzaService.CreatePizza(models.PizzaCreateRequest{Size: &size, Flavours: flavourIDs[:2]})
	checkPanicErr(err)

	name, phone, address := "Demo Customer", "+123456789012", "1 Example Street"
	customer, err := customerService.CreateCustomer(models.CustomerCreateRequest{Name: &name, PhoneNumber: &phone, Address: &address})
	checkPanicErr(err)

	_, err = orderService.CreateOrder(models.OrderCreateRequest{Customer: &customer.ID, Pizzas: []uint{pizza.ID}})
	checkPanicErr(err)
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.RequestID(), middleware.RequestLogger(log.StandardLogger()), gin.Recovery())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	controllers.RegisterRoutes(api, controllers.Controllers{
		Flavours:  controllers.NewFlavourController(flavourService),
		Pizzas:    controllers.NewPizzaController(pizzaService),
		Customers: controllers.NewCustomerController(customerService),
		Orders:    controllers.NewOrderController(orderService),
	})
	router.NoRoute(controllers.NotFound)
	router.NoMethod(controllers.MethodNotAllowed)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK
	if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-orders",
	})
}
