package models

// Response shapes. Fields are declared in alphabetical JSON order.

type RestaurantView struct {
	Address string `json:"address"`
	ID      uint   `json:"id"`
	Name    string `json:"name"`
}

type PizzaView struct {
	ID          uint   `json:"id"`
	Ingredients string `json:"ingredients"`
	Name        string `json:"name"`
}

type RestaurantPizzaView struct {
	ID           uint      `json:"id"`
	Pizza        PizzaView `json:"pizza"`
	PizzaID      uint      `json:"pizza_id"`
	Price        float64   `json:"price"`
	RestaurantID uint      `json:"restaurant_id"`
}

type RestaurantDetail struct {
	Address          string                `json:"address"`
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

type RestaurantPizzaCreated struct {
	ID           uint           `json:"id"`
	Pizza        PizzaView      `json:"pizza"`
	PizzaID      uint           `json:"pizza_id"`
	Price        float64        `json:"price"`
	Restaurant   RestaurantView `json:"restaurant"`
	RestaurantID uint           `json:"restaurant_id"`
}

// RestaurantViews projects a list of restaurants
func RestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, r.View())
	}
	return views
}

// PizzaViews projects a list of pizzas
func PizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, p.View())
	}
	return views
}
