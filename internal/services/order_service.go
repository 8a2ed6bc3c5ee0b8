package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilter narrows down the order list. Empty fields are ignored; when both are set an order
// matches if either one does.
type OrderFilter struct {
	CustomerName string
	Status       string
}

// OrderService manages orders and enforces that shipped and delivered orders stay unchanged
type OrderService interface {
	// GetAllOrders retrieves orders matching the filter with customer, pizzas and flavours loaded
	GetAllOrders(filter OrderFilter) ([]models.Order, error)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(id uint) (models.Order, error)
	// CreateOrder creates an order for an existing customer and totals it
	CreateOrder(req models.OrderCreateRequest) (models.Order, error)
	// UpdateOrder applies the provided fields unless the order is in an immutable status
	UpdateOrder(id uint, req models.OrderUpdateRequest) (models.Order, error)
	// DeleteOrder deletes an order
	DeleteOrder(id uint) error
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func withOrderRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("Pizzas", func(db *gorm.DB) *gorm.DB { return db.Order("pizzas.id") }).
		Preload("Pizzas.Flavours", preloadFlavours)
}

func (s *orderService) GetAllOrders(filter OrderFilter) ([]models.Order, error) {
	query := withOrderRelations(s.db.Model(&models.Order{}))
	if filter.CustomerName != "" || filter.Status != "" {
		query = query.Joins("JOIN customers ON customers.id = orders.customer_id")
	}
	switch {
	case filter.CustomerName != "" && filter.Status != "":
		query = query.Where("customers.name = ? OR orders.status = ?", filter.CustomerName, filter.Status)
	case filter.CustomerName != "":
		query = query.Where("customers.name = ?", filter.CustomerName)
	case filter.Status != "":
		query = query.Where("orders.status = ?", filter.Status)
	}

	var orders []models.Order
	if err := query.Order("orders.id").Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].PizzaCount = len(orders[i].Pizzas)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (models.Order, error) {
	return loadOrder(s.db, id)
}

func loadOrder(db *gorm.DB, id uint) (models.Order, error) {
	var order models.Order
	if err := withOrderRelations(db).First(&order, id).Error; err != nil {
		return models.Order{}, notFoundOr(err, "order", id)
	}
	order.PizzaCount = len(order.Pizzas)
	return order, nil
}

func (s *orderService) CreateOrder(req models.OrderCreateRequest) (models.Order, error) {
	if req.Customer == nil {
		return models.Order{}, newValidationError("customer", "This field is required.")
	}
	order := models.Order{CustomerID: *req.Customer, Status: models.StatusInit}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if err := validateStruct(order); err != nil {
		return models.Order{}, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureCustomerExists(tx, order.CustomerID); err != nil {
			return err
		}
		pizzas, err := resolvePizzas(tx, req.Pizzas)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}
		return setOrderPizzas(tx, &order, pizzas)
	})
	if err != nil {
		return models.Order{}, err
	}

	created, err := loadOrder(s.db, order.ID)
	if err != nil {
		return models.Order{}, err
	}
	log.WithFields(logrus.Fields{
		"order_id":    created.ID,
		"customer_id": created.CustomerID,
		"total_sum":   created.TotalSum,
	}).Info("Order created")
	return created, nil
}

func (s *orderService) UpdateOrder(id uint, req models.OrderUpdateRequest) (models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return notFoundOr(err, "order", id)
		}
		if order.Status.IsImmutable() {
			return newValidationError("", "Order with statuses %v can not be changed", models.ImmutableStatuses)
		}

		if req.Customer != nil {
			order.CustomerID = *req.Customer
		}
		if req.Status != nil {
			order.Status = *req.Status
		}
		if err := validateStruct(order); err != nil {
			return err
		}
		if req.Customer != nil {
			if err := ensureCustomerExists(tx, order.CustomerID); err != nil {
				return err
			}
		}
		updates := map[string]interface{}{"customer_id": order.CustomerID, "status": order.Status}
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if req.Pizzas == nil {
			return nil
		}
		pizzas, err := resolvePizzas(tx, req.Pizzas)
		if err != nil {
			return err
		}
		return setOrderPizzas(tx, &order, pizzas)
	})
	if err != nil {
		return models.Order{}, err
	}

	updated, err := loadOrder(s.db, id)
	if err != nil {
		return models.Order{}, err
	}
	log.WithFields(logrus.Fields{"order_id": id, "status": updated.Status, "total_sum": updated.TotalSum}).Info("Order updated")
	return updated, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return notFoundOr(err, "order", id)
		}
		if err := tx.Exec("DELETE FROM order_pizzas WHERE order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return err
	}
	log.WithField("order_id", id).Info("Order deleted")
	return nil
}

func ensureCustomerExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check customer %d: %w", id, err)
	}
	if count == 0 {
		return newValidationError("customer", "Invalid pk \"%d\" - object does not exist.", id)
	}
	return nil
}

// resolvePizzas looks up every referenced pizza and resolves-or-creates it by id.
// Unknown ids are a validation error, duplicates are attached once.
func resolvePizzas(tx *gorm.DB, ids []uint) ([]models.Pizza, error) {
	pizzas := make([]models.Pizza, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		var count int64
		if err := tx.Model(&models.Pizza{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, newValidationError("pizzas", "Invalid pk \"%d\" - object does not exist.", id)
		}
		var pizza models.Pizza
		defaults := models.Pizza{Size: models.SizeL, Price: models.CalculatePrice(models.SizeL, nil)}
		if err := tx.Where(models.Pizza{ID: id}).Attrs(defaults).FirstOrCreate(&pizza).Error; err != nil {
			return nil, err
		}
		pizzas = append(pizzas, pizza)
	}
	return pizzas, nil
}
