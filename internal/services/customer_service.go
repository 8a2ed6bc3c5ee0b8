package services

import (
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CustomerService interface {
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerByID(id uint) (models.Customer, error)
	CreateCustomer(req models.CustomerCreateRequest) (models.Customer, error)
	UpdateCustomer(id uint, req models.CustomerUpdateRequest) (models.Customer, error)
	// DeleteCustomer deletes the customer together with all of their orders
	DeleteCustomer(id uint) error
}

type customerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{db: db}
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(id uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return models.Customer{}, notFoundOr(err, "customer", id)
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(req models.CustomerCreateRequest) (models.Customer, error) {
	var customer models.Customer
	applyCustomerFields(&customer, req.Name, req.PhoneNumber, req.Address)
	if err := validateStruct(customer); err != nil {
		return models.Customer{}, err
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	log.WithField("customer_id", customer.ID).Info("Customer created")
	return customer, nil
}

func (s *customerService) UpdateCustomer(id uint, req models.CustomerUpdateRequest) (models.Customer, error) {
	var customer models.Customer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			return notFoundOr(err, "customer", id)
		}
		applyCustomerFields(&customer, req.Name, req.PhoneNumber, req.Address)
		if err := validateStruct(customer); err != nil {
			return err
		}
		return tx.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":         customer.Name,
			"phone_number": customer.PhoneNumber,
			"address":      customer.Address,
		}).Error
	})
	if err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	var orderIDs []uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return notFoundOr(err, "customer", id)
		}
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_pizzas WHERE order_id IN ?", orderIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"customer_id": id, "orders_deleted": len(orderIDs)}).Info("Customer deleted")
	return nil
}

func applyCustomerFields(c *models.Customer, name, phone, address *string) {
	if name != nil {
		c.Name = *name
	}
	if phone != nil {
		c.PhoneNumber = *phone
	}
	if address != nil {
		c.Address = *address
	}
}
