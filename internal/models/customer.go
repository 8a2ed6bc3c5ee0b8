package models

// Customer is the person an order is placed for
type Customer struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:300;not null" validate:"required,max=300"`
	PhoneNumber string `json:"phone_number" gorm:"size:17;not null" validate:"required,max=17,phone"`
	Address     string `json:"address" gorm:"type:text;not null" validate:"required"`
}
