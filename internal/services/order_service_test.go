package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderIDs(orders []models.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestGetOrderByIDLoadsRelations(t *testing.T) {
	f := newFixture(t)
	pizza := f.pizza(t, models.SizeL, f.flavour(t, "some_flavour", 5))
	customer := f.customer(t, "some_user")
	created := f.order(t, customer, models.StatusInit, pizza)

	order, err := f.orders.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(15), order.TotalSum)
	assert.Equal(t, 1, order.PizzaCount)
	assert.Equal(t, models.StatusInit, order.Status)
	assert.Equal(t, "some_user", order.Customer.Name)
	require.Len(t, order.Pizzas, 1)
	require.Len(t, order.Pizzas[0].Flavours, 1)
	assert.Equal(t, "some_flavour", order.Pizzas[0].Flavours[0].Name)
	assert.Equal(t, uint(5), order.Pizzas[0].Flavours[0].AddedPrice)
}

func TestCreateOrderDefaultsAndDuplicates(t *testing.T) {
	f := newFixture(t)
	pizza := f.pizza(t, models.SizeL, f.flavour(t, "cheese", 5))
	customer := f.customer(t, "alice")

	order, err := f.orders.CreateOrder(models.OrderCreateRequest{Customer: &customer.ID, Pizzas: []uint{pizza.ID, pizza.ID}})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInit, order.Status)
	assert.Equal(t, 1, order.PizzaCount)
	assert.Equal(t, uint(15), order.TotalSum)

	empty, err := f.orders.CreateOrder(models.OrderCreateRequest{Customer: &customer.ID, Pizzas: []uint{}})
	require.NoError(t, err)
	assert.Equal(t, uint(0), empty.TotalSum)
	assert.Equal(t, 0, empty.PizzaCount)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	customer := f.customer(t, "alice")
	unknownCustomer := uint(999)
	badStatus := models.OrderStatus("cooking")

	testCases := []struct {
		name          string
		req           models.OrderCreateRequest
		expectedField string
	}{
		{name: "missing customer", req: models.OrderCreateRequest{Pizzas: []uint{}}, expectedField: "customer"},
		{name: "unknown customer", req: models.OrderCreateRequest{Customer: &unknownCustomer, Pizzas: []uint{}}, expectedField: "customer"},
		{name: "unknown pizza", req: models.OrderCreateRequest{Customer: &customer.ID, Pizzas: []uint{42}}, expectedField: "pizzas"},
		{name: "invalid status", req: models.OrderCreateRequest{Customer: &customer.ID, Status: &badStatus, Pizzas: []uint{}}, expectedField: "status"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.CreateOrder(tt.req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}

	orders, err := f.orders.GetAllOrders(OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders, "rejected orders are not stored")
}

func TestUpdateOrderRejectsImmutableStatuses(t *testing.T) {
	for _, status := range models.ImmutableStatuses {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			pizza := f.pizza(t, models.SizeL, f.flavour(t, "cheese", 5))
			other := f.pizza(t, models.SizeXXL)
			customer := f.customer(t, "alice")
			order := f.order(t, customer, status, pizza)

			requests := []models.OrderUpdateRequest{
				{},
				{Status: ptr(models.StatusInit)},
				{Pizzas: []uint{other.ID}},
				{Customer: &customer.ID},
			}
			for _, req := range requests {
				_, err := f.orders.UpdateOrder(order.ID, req)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "Order with statuses [shipped delivered] can not be changed", validationErr.Message)
			}

			reloaded := f.reloadOrder(t, order.ID)
			assert.Equal(t, status, reloaded.Status)
			assert.Equal(t, uint(15), reloaded.TotalSum)
			require.Len(t, reloaded.Pizzas, 1)
			assert.Equal(t, pizza.ID, reloaded.Pizzas[0].ID)
		})
	}
}

func TestUpdateOrderStatusAndCustomer(t *testing.T) {
	f := newFixture(t)
	pizza := f.pizza(t, models.SizeL, f.flavour(t, "cheese", 5))
	alice := f.customer(t, "alice")
	bob := f.customer(t, "bob")
	order := f.order(t, alice, models.StatusInit, pizza)

	updated, err := f.orders.UpdateOrder(order.ID, models.OrderUpdateRequest{Status: ptr(models.StatusShipped), Customer: &bob.ID})
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)
	assert.Equal(t, bob.ID, updated.CustomerID)
	assert.Equal(t, "bob", updated.Customer.Name)
	assert.Equal(t, uint(15), updated.TotalSum, "status change alone keeps the total")

	_, err = f.orders.UpdateOrder(order.ID, models.OrderUpdateRequest{Status: ptr(models.StatusDelivered)})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr, "shipped order is now frozen")
}

func TestUpdateOrderUnknownReferences(t *testing.T) {
	f := newFixture(t)
	order := f.order(t, f.customer(t, "alice"), models.StatusInit)

	_, err := f.orders.UpdateOrder(999, models.OrderUpdateRequest{})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.Resource)

	_, err = f.orders.UpdateOrder(order.ID, models.OrderUpdateRequest{Customer: ptr(uint(999))})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "customer", validationErr.Field)
}

func TestGetAllOrdersFilter(t *testing.T) {
	f := newFixture(t)
	alice := f.customer(t, "alice")
	bob := f.customer(t, "bob")
	carol := f.customer(t, "carol")
	aliceInit := f.order(t, alice, models.StatusInit)
	bobPaid := f.order(t, bob, models.StatusPaid)
	carolInit := f.order(t, carol, models.StatusInit)
	alicePaid := f.order(t, alice, models.StatusPaid)

	testCases := []struct {
		name     string
		filter   OrderFilter
		expected []uint
	}{
		{name: "no filter", filter: OrderFilter{}, expected: []uint{aliceInit.ID, bobPaid.ID, carolInit.ID, alicePaid.ID}},
		{name: "customer name only", filter: OrderFilter{CustomerName: "alice"}, expected: []uint{aliceInit.ID, alicePaid.ID}},
		{name: "status only", filter: OrderFilter{Status: "paid"}, expected: []uint{bobPaid.ID, alicePaid.ID}},
		{name: "either matches", filter: OrderFilter{CustomerName: "alice", Status: "paid"}, expected: []uint{aliceInit.ID, bobPaid.ID, alicePaid.ID}},
		{name: "disjoint union", filter: OrderFilter{CustomerName: "carol", Status: "paid"}, expected: []uint{bobPaid.ID, carolInit.ID, alicePaid.ID}},
		{name: "nothing matches", filter: OrderFilter{CustomerName: "dave"}, expected: []uint{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := f.orders.GetAllOrders(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, orderIDs(orders))
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	f := newFixture(t)
	pizza := f.pizza(t, models.SizeL)
	order := f.order(t, f.customer(t, "alice"), models.StatusDelivered, pizza)

	require.NoError(t, f.orders.DeleteOrder(order.ID))

	_, err := f.orders.GetOrderByID(order.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(10), f.reloadPizza(t, pizza.ID).Price, "pizzas outlive the order")

	assert.ErrorAs(t, f.orders.DeleteOrder(order.ID), &notFound)
}
