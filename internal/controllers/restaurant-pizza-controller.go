package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests that add pizzas to restaurants
type RestaurantPizzaController interface {
	// CreateRestaurantPizza sells an existing pizza at an existing restaurant
	CreateRestaurantPizza(ctx *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Validates the pizza, the restaurant and the price, reporting every problem at once
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaRequest true "Offering"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req models.RestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse([]string{models.MsgInvalidRequestBody}))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req)
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErr.Errors))
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to create restaurant pizza")
		return
	}
	ctx.JSON(http.StatusCreated, created.Created())
}
