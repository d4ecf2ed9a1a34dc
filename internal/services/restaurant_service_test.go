package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errInjected = errors.New("injected storage failure")

// failDeletesOf makes every delete against table fail before it reaches the database
func failDeletesOf(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errInjected)
		}
	})
	require.NoError(t, err)
}

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	restaurants, err := service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	c := seedCatalog(t, db)

	restaurants, err = service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, c.restaurants[0].ID, restaurants[0].ID)
	assert.Equal(t, "Sanjay's Pizza", restaurants[1].Name)
	assert.Empty(t, restaurants[0].RestaurantPizzas, "list must not load offerings")
}

func TestGetRestaurantByIDLoadsOfferingsInOrder(t *testing.T) {
	db := setupTestDB(t)
	c := seedCatalog(t, db)
	service := NewRestaurantService(db)

	restaurant, err := service.GetRestaurantByID(context.Background(), c.restaurants[0].ID)
	require.NoError(t, err)

	assert.Equal(t, "Karen's Pizza Shack", restaurant.Name)
	require.Len(t, restaurant.RestaurantPizzas, 2)

	first, second := restaurant.RestaurantPizzas[0], restaurant.RestaurantPizzas[1]
	assert.Less(t, first.ID, second.ID)
	assert.Equal(t, "Geri", first.Pizza.Name)
	assert.Equal(t, 8.0, first.Price)
	assert.Equal(t, "Emma", second.Pizza.Name)
	assert.Equal(t, c.pizzas[0].ID, second.Pizza.ID)
	assert.Equal(t, "Dough, Tomato Sauce, Cheese", second.Pizza.Ingredients)
}

func TestGetRestaurantByIDWithoutOfferings(t *testing.T) {
	db := setupTestDB(t)
	c := seedCatalog(t, db)

	restaurant, err := NewRestaurantService(db).GetRestaurantByID(context.Background(), c.restaurants[1].ID)
	require.NoError(t, err)
	assert.Empty(t, restaurant.RestaurantPizzas)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	_, err := NewRestaurantService(db).GetRestaurantByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurantCascadesToOfferings(t *testing.T) {
	db := setupTestDB(t)
	c := seedCatalog(t, db)
	service := NewRestaurantService(db)
	ctx := context.Background()
	target := c.restaurants[0].ID

	require.NoError(t, service.DeleteRestaurant(ctx, target))

	_, err := service.GetRestaurantByID(ctx, target)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	var remaining int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", target).Count(&remaining).Error)
	assert.Zero(t, remaining)

	// Pizzas are not owned by the restaurant
	var pizzas int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.EqualValues(t, 2, pizzas)

	// The other restaurant is untouched
	other, err := service.GetRestaurantByID(ctx, c.restaurants[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Sanjay's Pizza", other.Name)

	assert.ErrorIs(t, service.DeleteRestaurant(ctx, target), ErrRestaurantNotFound)
}

func TestDeleteRestaurantNotFoundLeavesDataAlone(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	err := NewRestaurantService(db).DeleteRestaurant(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	var offerings int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&offerings).Error)
	assert.EqualValues(t, 2, offerings)
}

func TestDeleteRestaurantRollsBackOfferingsOnFailure(t *testing.T) {
	db := setupTestDB(t)
	c := seedCatalog(t, db)
	target := c.restaurants[0].ID

	// Offerings are deleted first, so the restaurant delete fails after they are gone
	failDeletesOf(t, db, "restaurants")

	err := NewRestaurantService(db).DeleteRestaurant(context.Background(), target)
	require.ErrorIs(t, err, errInjected)

	var offerings int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", target).Count(&offerings).Error)
	assert.EqualValues(t, 2, offerings)

	var restaurants int64
	require.NoError(t, db.Model(&models.Restaurant{}).Where("id = ?", target).Count(&restaurants).Error)
	assert.EqualValues(t, 1, restaurants)
}
