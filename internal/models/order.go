package models

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusInit      OrderStatus = "init"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

// ImmutableStatuses lists the statuses in which an order can no longer be updated
var ImmutableStatuses = []OrderStatus{StatusShipped, StatusDelivered}

// IsImmutable reports whether an order in this status rejects updates
func (s OrderStatus) IsImmutable() bool {
	for _, immutable := range ImmutableStatuses {
		if s == immutable {
			return true
		}
	}
	return false
}

// Order is a customer's purchase of a set of pizzas
type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	TotalSum   uint        `json:"total_sum" gorm:"not null"`
	CustomerID uint        `json:"-" gorm:"not null;index" validate:"required"`
	Customer   Customer    `json:"customer" gorm:"constraint:OnDelete:CASCADE;" validate:"-"`
	Pizzas     []Pizza     `json:"pizzas" gorm:"many2many:order_pizzas;"`
	PizzaCount int         `json:"pizza_count" gorm:"-"`
	Status     OrderStatus `json:"status" gorm:"size:20;not null;index" validate:"oneof=init paid shipped delivered"`
}
