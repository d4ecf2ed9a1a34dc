package models

// RestaurantPizza records that a pizza is sold at a restaurant for a price.
// The same pair may appear more than once with different prices.
type RestaurantPizza struct {
	ID    uint    `gorm:"primaryKey"`
	Price float64 `gorm:"not null;check:chk_restaurant_pizzas_price,price > 0"`

	PizzaID uint  `gorm:"not null;index"`
	Pizza   Pizza

	RestaurantID uint       `gorm:"not null;index"`
	Restaurant   Restaurant
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// View projects the offering as it appears nested under a restaurant
func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Pizza:        rp.Pizza.View(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
	}
}

// Created projects a freshly inserted offering with both sides of the association.
// Pizza and Restaurant must be populated.
func (rp RestaurantPizza) Created() RestaurantPizzaCreated {
	return RestaurantPizzaCreated{
		ID:           rp.ID,
		Pizza:        rp.Pizza.View(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		Restaurant:   rp.Restaurant.View(),
		RestaurantID: rp.RestaurantID,
	}
}

// RestaurantPizzaRequest is the POST /restaurant_pizzas body.
// Fields stay untyped so that every bad field is reported, not just the first decode error.
type RestaurantPizzaRequest struct {
	Price        any `json:"price" swaggertype:"number" example:"12.5"`
	PizzaID      any `json:"pizza_id" swaggertype:"integer" example:"1"`
	RestaurantID any `json:"restaurant_id" swaggertype:"integer" example:"1"`
}
