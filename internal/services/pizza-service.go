package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the service layer logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas with their flavours
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza creates a pizza topped with the referenced flavours and prices it
	CreatePizza(req models.PizzaCreateRequest) (models.Pizza, error)
	// UpdatePizza changes the size and/or flavours of a pizza and reprices it
	UpdatePizza(id uint, req models.PizzaUpdateRequest) (models.Pizza, error)
	// DeletePizza deletes a pizza and re-totals the init orders that contained it
	DeletePizza(id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func preloadFlavours(db *gorm.DB) *gorm.DB {
	return db.Order("flavours.id")
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Preload("Flavours", preloadFlavours).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	return loadPizza(s.db, id)
}

func loadPizza(db *gorm.DB, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.Preload("Flavours", preloadFlavours).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, notFoundOr(err, "pizza", id)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(req models.PizzaCreateRequest) (models.Pizza, error) {
	pizza := models.Pizza{Size: models.SizeL}
	if req.Size != nil {
		pizza.Size = *req.Size
	}
	if err := validateStruct(pizza); err != nil {
		return models.Pizza{}, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		flavours, err := resolveFlavours(tx, req.Flavours)
		if err != nil {
			return err
		}
		pizza.Price = models.CalculatePrice(pizza.Size, nil)
		if err := tx.Omit(clause.Associations).Create(&pizza).Error; err != nil {
			return err
		}
		for i := range flavours {
			if err := attachFlavour(tx, &pizza, &flavours[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}

	created, err := loadPizza(s.db, pizza.ID)
	if err != nil {
		return models.Pizza{}, err
	}
	log.WithFields(logrus.Fields{"pizza_id": created.ID, "size": created.Size, "price": created.Price}).Info("Pizza created")
	return created, nil
}

func (s *pizzaService) UpdatePizza(id uint, req models.PizzaUpdateRequest) (models.Pizza, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return notFoundOr(err, "pizza", id)
		}
		if req.Size != nil {
			pizza.Size = *req.Size
			if err := validateStruct(pizza); err != nil {
				return err
			}
			if err := tx.Model(&models.Pizza{}).Where("id = ?", id).Update("size", pizza.Size).Error; err != nil {
				return err
			}
		}
		if req.Flavours != nil {
			flavours, err := resolveFlavours(tx, req.Flavours)
			if err != nil {
				return err
			}
			return setPizzaFlavours(tx, &pizza, flavours)
		}
		if req.Size != nil {
			return updatePizzaPrice(tx, id)
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return loadPizza(s.db, id)
}

func (s *pizzaService) DeletePizza(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return notFoundOr(err, "pizza", id)
		}
		orderIDs, err := orderIDsWithPizza(tx, id, models.StatusInit)
		if err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM order_pizzas WHERE pizza_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM pizza_flavours WHERE pizza_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&pizza).Error; err != nil {
			return err
		}
		for _, orderID := range orderIDs {
			if err := updateOrderTotal(tx, orderID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.WithField("pizza_id", id).Info("Pizza deleted")
	return nil
}

// resolveFlavours looks up every referenced flavour, then resolves-or-creates a flavour with the
// same name and price to attach. Unknown ids are a validation error, duplicates are attached once.
func resolveFlavours(tx *gorm.DB, ids []uint) ([]models.Flavour, error) {
	flavours := make([]models.Flavour, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		var referenced models.Flavour
		if err := tx.First(&referenced, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, newValidationError("flavours", "Invalid pk \"%d\" - object does not exist.", id)
			}
			return nil, err
		}
		var flavour models.Flavour
		conds := map[string]interface{}{"name": referenced.Name, "added_price": referenced.AddedPrice}
		if err := tx.Where(conds).FirstOrCreate(&flavour).Error; err != nil {
			return nil, err
		}
		flavours = append(flavours, flavour)
	}
	return flavours, nil
}
