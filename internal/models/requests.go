package models

// Request bodies accepted by the API. Pointer fields distinguish "not sent" from a zero value
// so partial updates only touch what the client provided.

type FlavourCreateRequest struct {
	Name       *string `json:"name" binding:"required"`
	AddedPrice *uint   `json:"added_price" binding:"required"`
}

type FlavourUpdateRequest struct {
	Name       *string `json:"name"`
	AddedPrice *uint   `json:"added_price"`
}

type PizzaCreateRequest struct {
	Size     *PizzaSize `json:"size"`
	Flavours []uint     `json:"flavours" binding:"required"`
}

type PizzaUpdateRequest struct {
	Size     *PizzaSize `json:"size"`
	Flavours []uint     `json:"flavours"`
}

type CustomerCreateRequest struct {
	Name        *string `json:"name" binding:"required"`
	PhoneNumber *string `json:"phone_number" binding:"required"`
	Address     *string `json:"address" binding:"required"`
}

type CustomerUpdateRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type OrderCreateRequest struct {
	Customer *uint        `json:"customer" binding:"required"`
	Status   *OrderStatus `json:"status"`
	Pizzas   []uint       `json:"pizzas" binding:"required"`
}

type OrderUpdateRequest struct {
	Customer *uint        `json:"customer"`
	Status   *OrderStatus `json:"status"`
	Pizzas   []uint       `json:"pizzas"`
}
