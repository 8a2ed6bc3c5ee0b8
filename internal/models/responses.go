package models

// PizzaWriteResponse is returned after creating a pizza. Flavours are rendered as ids,
// the same shape the request was sent in.
type PizzaWriteResponse struct {
	ID       uint      `json:"id"`
	Size     PizzaSize `json:"size"`
	Price    uint      `json:"price"`
	Flavours []uint    `json:"flavours"`
}

// OrderWriteResponse is returned after creating or updating an order
type OrderWriteResponse struct {
	ID       uint        `json:"id"`
	TotalSum uint        `json:"total_sum"`
	Status   OrderStatus `json:"status"`
	Customer uint        `json:"customer"`
	Pizzas   []uint      `json:"pizzas"`
}

// NewPizzaWriteResponse flattens a pizza into its write representation
func NewPizzaWriteResponse(p Pizza) PizzaWriteResponse {
	ids := make([]uint, 0, len(p.Flavours))
	for _, f := range p.Flavours {
		ids = append(ids, f.ID)
	}
	return PizzaWriteResponse{ID: p.ID, Size: p.Size, Price: p.Price, Flavours: ids}
}

// NewOrderWriteResponse flattens an order into its write representation
func NewOrderWriteResponse(o Order) OrderWriteResponse {
	ids := make([]uint, 0, len(o.Pizzas))
	for _, p := range o.Pizzas {
		ids = append(ids, p.ID)
	}
	return OrderWriteResponse{
		ID:       o.ID,
		TotalSum: o.TotalSum,
		Status:   o.Status,
		Customer: o.CustomerID,
		Pizzas:   ids,
	}
}
