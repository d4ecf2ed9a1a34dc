package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Ingredients string `gorm:"not null"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// View projects the pizza to {id, ingredients, name}
func (p Pizza) View() PizzaView {
	return PizzaView{
		ID:          p.ID,
		Ingredients: p.Ingredients,
		Name:        p.Name,
	}
}
