package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to read and remove restaurants
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by id, without their offerings
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its offerings and their pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant removes a restaurant and all of its offerings atomically
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	db := s.db.WithContext(ctx)

	restaurant, err := findRestaurant(db, id)
	if err != nil {
		return models.Restaurant{}, err
	}

	var offerings []models.RestaurantPizza
	err = db.Joins("Pizza").
		Where("restaurant_pizzas.restaurant_id = ?", restaurant.ID).
		Order("restaurant_pizzas.id").
		Find(&offerings).Error
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("list offerings of restaurant %d: %w", id, err)
	}
	restaurant.RestaurantPizzas = offerings

	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := findRestaurant(tx, id)
		if err != nil {
			return err
		}

		// Offerings go first so the foreign keys never dangle
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("delete offerings of restaurant %d: %w", id, err)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}

func findRestaurant(db *gorm.DB, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}
