package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The functions in this file keep Pizza.price and Order.total_sum consistent with their composition.
// Every one of them expects tx to be the transaction of the write that triggered it, so the
// recomputation reads the state that write produced and is rolled back together with it.
//
// Fan-out graph: flavour -> pizzas referencing it -> init orders referencing those pizzas.

// attachFlavour adds a flavour to a pizza and reprices it
func attachFlavour(tx *gorm.DB, pizza *models.Pizza, flavour *models.Flavour) error {
	if err := tx.Model(pizza).Association("Flavours").Append(flavour); err != nil {
		return fmt.Errorf("attach flavour %d to pizza %d: %w", flavour.ID, pizza.ID, err)
	}
	return updatePizzaPrice(tx, pizza.ID)
}

// setPizzaFlavours replaces the flavour set of a pizza and reprices it. An empty set clears it.
func setPizzaFlavours(tx *gorm.DB, pizza *models.Pizza, flavours []models.Flavour) error {
	assoc := tx.Model(pizza).Association("Flavours")
	var err error
	if len(flavours) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(flavours)
	}
	if err != nil {
		return fmt.Errorf("set flavours of pizza %d: %w", pizza.ID, err)
	}
	return updatePizzaPrice(tx, pizza.ID)
}

// updateFlavourPrice reprices every pizza currently topped with the flavour
func updateFlavourPrice(tx *gorm.DB, flavourID uint) error {
	var pizzaIDs []uint
	if err := tx.Table("pizza_flavours").Where("flavour_id = ?", flavourID).Pluck("pizza_id", &pizzaIDs).Error; err != nil {
		return fmt.Errorf("find pizzas with flavour %d: %w", flavourID, err)
	}
	return repricePizzas(tx, pizzaIDs)
}

func repricePizzas(tx *gorm.DB, pizzaIDs []uint) error {
	for _, id := range pizzaIDs {
		if err := updatePizzaPrice(tx, id); err != nil {
			return err
		}
	}
	return nil
}

// updatePizzaPrice recomputes and stores a pizza's price, then re-totals the orders in init status
// that contain it. Orders past init keep the total they had.
func updatePizzaPrice(tx *gorm.DB, pizzaID uint) error {
	var pizza models.Pizza
	if err := tx.First(&pizza, pizzaID).Error; err != nil {
		return notFoundOr(err, "pizza", pizzaID)
	}
	var flavours []models.Flavour
	if err := tx.Model(&pizza).Association("Flavours").Find(&flavours); err != nil {
		return fmt.Errorf("load flavours of pizza %d: %w", pizzaID, err)
	}

	price := models.CalculatePrice(pizza.Size, flavours)
	if err := tx.Model(&models.Pizza{}).Where("id = ?", pizzaID).Update("price", price).Error; err != nil {
		return fmt.Errorf("store price of pizza %d: %w", pizzaID, err)
	}
	log.WithFields(logrus.Fields{
		"pizza_id":  pizzaID,
		"size":      pizza.Size,
		"flavours":  len(flavours),
		"old_price": pizza.Price,
		"price":     price,
	}).Debug("Pizza repriced")

	orderIDs, err := orderIDsWithPizza(tx, pizzaID, models.StatusInit)
	if err != nil {
		return err
	}
	for _, id := range orderIDs {
		if err := updateOrderTotal(tx, id); err != nil {
			return err
		}
	}
	return nil
}

// setOrderPizzas replaces the pizza set of an order and re-totals it whatever its status
func setOrderPizzas(tx *gorm.DB, order *models.Order, pizzas []models.Pizza) error {
	assoc := tx.Model(order).Association("Pizzas")
	var err error
	if len(pizzas) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(pizzas)
	}
	if err != nil {
		return fmt.Errorf("set pizzas of order %d: %w", order.ID, err)
	}
	return updateOrderTotal(tx, order.ID)
}

// updateOrderTotal stores the sum of the current prices of the order's pizzas
func updateOrderTotal(tx *gorm.DB, orderID uint) error {
	order := models.Order{ID: orderID}
	var pizzas []models.Pizza
	if err := tx.Model(&order).Association("Pizzas").Find(&pizzas); err != nil {
		return fmt.Errorf("load pizzas of order %d: %w", orderID, err)
	}

	var total uint
	for _, p := range pizzas {
		total += p.Price
	}
	if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Update("total_sum", total).Error; err != nil {
		return fmt.Errorf("store total of order %d: %w", orderID, err)
	}
	log.WithFields(logrus.Fields{
		"order_id":  orderID,
		"pizzas":    len(pizzas),
		"total_sum": total,
	}).Debug("Order re-totalled")
	return nil
}

// orderIDsWithPizza lists the orders containing the pizza, optionally restricted to some statuses
func orderIDsWithPizza(tx *gorm.DB, pizzaID uint, statuses ...models.OrderStatus) ([]uint, error) {
	query := tx.Model(&models.Order{}).
		Joins("JOIN order_pizzas ON order_pizzas.order_id = orders.id").
		Where("order_pizzas.pizza_id = ?", pizzaID)
	if len(statuses) > 0 {
		query = query.Where("orders.status IN ?", statuses)
	}
	var ids []uint
	if err := query.Order("orders.id").Pluck("orders.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("find orders with pizza %d: %w", pizzaID, err)
	}
	return ids, nil
}
