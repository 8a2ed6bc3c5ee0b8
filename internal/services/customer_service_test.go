package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		phone    string
		expected bool
	}{
		{"+11111111111111", true},
		{"123456789", true},
		{"+1123456789012345", true},
		{"12345678", false},
		{"+12345678901234567", false},
		{"+44 20 7946 0958", false},
		{"phone", false},
		{"", false},
	}

	for _, tt := range testCases {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidPhone(tt.phone))
		})
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		name          string
		req           models.CustomerCreateRequest
		expectedField string
	}{
		{
			name:          "invalid phone",
			req:           models.CustomerCreateRequest{Name: ptr("alice"), PhoneNumber: ptr("12-34"), Address: ptr("street")},
			expectedField: "phone_number",
		},
		{
			name:          "missing name",
			req:           models.CustomerCreateRequest{PhoneNumber: ptr("+123456789012"), Address: ptr("street")},
			expectedField: "name",
		},
		{
			name:          "empty address",
			req:           models.CustomerCreateRequest{Name: ptr("alice"), PhoneNumber: ptr("+123456789012"), Address: ptr("")},
			expectedField: "address",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.customers.CreateCustomer(tt.req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestUpdateCustomer(t *testing.T) {
	f := newFixture(t)
	customer := f.customer(t, "alice")

	updated, err := f.customers.UpdateCustomer(customer.ID, models.CustomerUpdateRequest{Address: ptr("new street")})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "new street", updated.Address)

	_, err = f.customers.UpdateCustomer(customer.ID, models.CustomerUpdateRequest{PhoneNumber: ptr("nope")})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	reloaded, err := f.customers.GetCustomerByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "+11111111111111", reloaded.PhoneNumber)

	_, err = f.customers.UpdateCustomer(999, models.CustomerUpdateRequest{})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteCustomerCascadesToOrders(t *testing.T) {
	f := newFixture(t)
	pizza := f.pizza(t, models.SizeL)
	alice := f.customer(t, "alice")
	bob := f.customer(t, "bob")
	aliceOrder := f.order(t, alice, models.StatusInit, pizza)
	f.order(t, alice, models.StatusDelivered, pizza)
	bobOrder := f.order(t, bob, models.StatusPaid, pizza)

	require.NoError(t, f.customers.DeleteCustomer(alice.ID))

	orders, err := f.orders.GetAllOrders(OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uint{bobOrder.ID}, orderIDs(orders))

	var links int64
	require.NoError(t, f.db.Table("order_pizzas").Where("order_id = ?", aliceOrder.ID).Count(&links).Error)
	assert.Zero(t, links)

	_, err = f.customers.GetCustomerByID(alice.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	_, err = f.pizzas.GetPizzaByID(pizza.ID)
	assert.NoError(t, err)
}
