package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	db        *gorm.DB
	flavours  FlavourService
	pizzas    PizzaService
	customers CustomerService
	orders    OrderService
}

func newFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	return &fixture{
		db:        db,
		flavours:  NewFlavourService(db),
		pizzas:    NewPizzaService(db),
		customers: NewCustomerService(db),
		orders:    NewOrderService(db),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (f *fixture) flavour(t *testing.T, name string, price uint) models.Flavour {
	t.Helper()
	flavour, err := f.flavours.CreateFlavour(models.FlavourCreateRequest{Name: &name, AddedPrice: &price})
	require.NoError(t, err)
	return flavour
}

func (f *fixture) pizza(t *testing.T, size models.PizzaSize, flavours ...models.Flavour) models.Pizza {
	t.Helper()
	ids := make([]uint, 0, len(flavours))
	for _, fl := range flavours {
		ids = append(ids, fl.ID)
	}
	pizza, err := f.pizzas.CreatePizza(models.PizzaCreateRequest{Size: &size, Flavours: ids})
	require.NoError(t, err)
	return pizza
}

func (f *fixture) customer(t *testing.T, name string) models.Customer {
	t.Helper()
	customer, err := f.customers.CreateCustomer(models.CustomerCreateRequest{
		Name:        &name,
		PhoneNumber: ptr("+11111111111111"),
		Address:     ptr("some address"),
	})
	require.NoError(t, err)
	return customer
}

func (f *fixture) order(t *testing.T, customer models.Customer, status models.OrderStatus, pizzas ...models.Pizza) models.Order {
	t.Helper()
	ids := make([]uint, 0, len(pizzas))
	for _, p := range pizzas {
		ids = append(ids, p.ID)
	}
	order, err := f.orders.CreateOrder(models.OrderCreateRequest{Customer: &customer.ID, Status: &status, Pizzas: ids})
	require.NoError(t, err)
	return order
}

func (f *fixture) reloadPizza(t *testing.T, id uint) models.Pizza {
	t.Helper()
	pizza, err := f.pizzas.GetPizzaByID(id)
	require.NoError(t, err)
	return pizza
}

func (f *fixture) reloadOrder(t *testing.T, id uint) models.Order {
	t.Helper()
	order, err := f.orders.GetOrderByID(id)
	require.NoError(t, err)
	return order
}
