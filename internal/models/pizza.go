package models

// PizzaSize is the size of a pizza as it appears on the wire and in the database
type PizzaSize string

const (
	SizeL   PizzaSize = "l"
	SizeXL  PizzaSize = "xl"
	SizeXXL PizzaSize = "xxl"
)

// BasePrice is added to the flavour prices of every pizza before the size coefficient is applied
const BasePrice uint = 10

var sizeCoefficients = map[PizzaSize]float64{
	SizeL:   1,
	SizeXL:  1.25,
	SizeXXL: 1.5,
}

// Coefficient returns the price multiplier for the size, or false for an unknown size
func (s PizzaSize) Coefficient() (float64, bool) {
	coeff, ok := sizeCoefficients[s]
	return coeff, ok
}

// Pizza represents a pizza with its size, flavours and derived price
type Pizza struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Size     PizzaSize `json:"size" gorm:"size:20;not null" validate:"oneof=l xl xxl"`
	Flavours []Flavour `json:"flavours" gorm:"many2many:pizza_flavours;"`
	Price    uint      `json:"price" gorm:"not null"`
}

// CalculatePrice returns the price of a pizza of the given size topped with the given flavours.
// The fractional part left by the size coefficient is truncated.
func CalculatePrice(size PizzaSize, flavours []Flavour) uint {
	coeff, ok := size.Coefficient()
	if !ok {
		coeff = sizeCoefficients[SizeL]
	}
	total := BasePrice
	for _, f := range flavours {
		total += f.AddedPrice
	}
	return uint(float64(total) * coeff)
}
