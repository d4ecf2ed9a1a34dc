package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists every restaurant
	GetAllRestaurants(ctx *gin.Context)
	// GetRestaurantByID shows one restaurant with its pizzas
	GetRestaurantByID(ctx *gin.Context)
	// DeleteRestaurant removes a restaurant and its pizzas
	DeleteRestaurant(ctx *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantView
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve restaurants")
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantViews(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant together with the pizzas it sells
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to retrieve restaurant")
		return
	}
	ctx.JSON(http.StatusOK, restaurant.Detail())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant_pizza that references it
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	err := c.service.DeleteRestaurant(ctx.Request.Context(), id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to delete restaurant")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// restaurantID reads the :id path parameter. Only positive integers can name a restaurant.
func restaurantID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
