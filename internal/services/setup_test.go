package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

type catalog struct {
	restaurants []models.Restaurant
	pizzas      []models.Pizza
}

// seedCatalog inserts two restaurants and two pizzas; the first restaurant sells both pizzas
func seedCatalog(t *testing.T, db *gorm.DB) catalog {
	t.Helper()
	c := catalog{
		restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
		},
		pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		},
	}
	require.NoError(t, db.Create(&c.restaurants).Error)
	require.NoError(t, db.Create(&c.pizzas).Error)

	offerings := []models.RestaurantPizza{
		{RestaurantID: c.restaurants[0].ID, PizzaID: c.pizzas[1].ID, Price: 8},
		{RestaurantID: c.restaurants[0].ID, PizzaID: c.pizzas[0].ID, Price: 6},
	}
	require.NoError(t, db.Create(&offerings).Error)
	return c
}
