package models

// Flavour is a topping that can be put on any number of pizzas
type Flavour struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"uniqueIndex;size:300;not null" validate:"required,max=300"`
	AddedPrice uint   `json:"added_price" gorm:"not null"`
}
