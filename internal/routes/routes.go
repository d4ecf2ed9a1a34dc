package routes

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter builds the Gin engine with every route and middleware wired to db
func SetupRouter(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	// Mutating routes only need a token when a signing secret is configured
	writeGuard := []gin.HandlerFunc{}
	if cfg.WriteGuardEnabled() {
		writeGuard = append(writeGuard,
			middleware.JWTAuth([]byte(cfg.JWTSecret)),
			middleware.RequireRole("admin"),
		)
	}

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck(func() error { return database.Ping(db) }))

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", append(writeGuard, restaurantController.DeleteRestaurant)...)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", append(writeGuard, restaurantPizzaController.CreateRestaurantPizza)...)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
