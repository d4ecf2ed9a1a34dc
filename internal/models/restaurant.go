package models

// Restaurant is a place that sells pizzas.
// Deleting one requires removing its RestaurantPizzas first, see services.RestaurantService.
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Address string

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// View projects the restaurant to {id, name, address}
func (r Restaurant) View() RestaurantView {
	return RestaurantView{
		Address: r.Address,
		ID:      r.ID,
		Name:    r.Name,
	}
}

// Detail projects the restaurant together with its offerings.
// RestaurantPizzas must be loaded with their Pizza.
func (r Restaurant) Detail() RestaurantDetail {
	offerings := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, rp.View())
	}
	return RestaurantDetail{
		Address:          r.Address,
		ID:               r.ID,
		Name:             r.Name,
		RestaurantPizzas: offerings,
	}
}
