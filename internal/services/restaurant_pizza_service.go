package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the pizzas offered by restaurants
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the request and inserts one offering.
	// Validation problems are returned together as a *ValidationError.
	CreateRestaurantPizza(ctx context.Context, req models.RestaurantPizzaRequest) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.RestaurantPizzaRequest) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var problems []string

		pizza, found, err := lookup[models.Pizza](tx, req.PizzaID)
		if err != nil {
			return fmt.Errorf("look up pizza: %w", err)
		}
		if !found {
			problems = append(problems, models.MsgInvalidPizzaID)
		}

		restaurant, found, err := lookup[models.Restaurant](tx, req.RestaurantID)
		if err != nil {
			return fmt.Errorf("look up restaurant: %w", err)
		}
		if !found {
			problems = append(problems, models.MsgInvalidRestaurantID)
		}

		price, ok := parsePrice(req.Price)
		if !ok {
			problems = append(problems, models.MsgInvalidPrice)
		}

		if len(problems) > 0 {
			return &ValidationError{Errors: problems}
		}

		created = models.RestaurantPizza{
			Price:        price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&created).Error; err != nil {
			return fmt.Errorf("insert restaurant pizza: %w", err)
		}
		created.Pizza = pizza
		created.Restaurant = restaurant
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	return created, nil
}

// lookup loads the row whose id is rawID. An id that cannot name a row is reported as not found.
func lookup[T any](tx *gorm.DB, rawID any) (T, bool, error) {
	var row T
	id, ok := parseID(rawID)
	if !ok {
		return row, false, nil
	}
	err := tx.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, err
	}
	return row, true, nil
}
