package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FlavourService manages flavours. Price changes are pushed to every pizza using the flavour.
type FlavourService interface {
	// GetAllFlavours retrieves all flavours ordered by id
	GetAllFlavours() ([]models.Flavour, error)
	// GetFlavourByID retrieves a flavour by its ID
	GetFlavourByID(id uint) (models.Flavour, error)
	// CreateFlavour creates a new flavour with a unique name
	CreateFlavour(req models.FlavourCreateRequest) (models.Flavour, error)
	// UpdateFlavour applies the provided fields and reprices the pizzas using the flavour
	UpdateFlavour(id uint, req models.FlavourUpdateRequest) (models.Flavour, error)
	// DeleteFlavour removes the flavour from every pizza, reprices them and deletes it
	DeleteFlavour(id uint) error
}

type flavourService struct {
	db *gorm.DB
}

// NewFlavourService creates a new instance of FlavourService
func NewFlavourService(db *gorm.DB) FlavourService {
	return &flavourService{db: db}
}

func (s *flavourService) GetAllFlavours() ([]models.Flavour, error) {
	var flavours []models.Flavour
	if err := s.db.Order("id").Find(&flavours).Error; err != nil {
		return nil, err
	}
	return flavours, nil
}

func (s *flavourService) GetFlavourByID(id uint) (models.Flavour, error) {
	var flavour models.Flavour
	if err := s.db.First(&flavour, id).Error; err != nil {
		return models.Flavour{}, notFoundOr(err, "flavour", id)
	}
	return flavour, nil
}

func (s *flavourService) CreateFlavour(req models.FlavourCreateRequest) (models.Flavour, error) {
	flavour := models.Flavour{}
	if req.Name != nil {
		flavour.Name = *req.Name
	}
	if req.AddedPrice != nil {
		flavour.AddedPrice = *req.AddedPrice
	}
	if err := validateStruct(flavour); err != nil {
		return models.Flavour{}, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueFlavourName(tx, flavour.Name, 0); err != nil {
			return err
		}
		return tx.Create(&flavour).Error
	})
	if err != nil {
		return models.Flavour{}, err
	}
	log.WithFields(logrus.Fields{"flavour_id": flavour.ID, "name": flavour.Name}).Info("Flavour created")
	return flavour, nil
}

func (s *flavourService) UpdateFlavour(id uint, req models.FlavourUpdateRequest) (models.Flavour, error) {
	var flavour models.Flavour
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&flavour, id).Error; err != nil {
			return notFoundOr(err, "flavour", id)
		}
		if req.Name != nil {
			flavour.Name = *req.Name
		}
		if req.AddedPrice != nil {
			flavour.AddedPrice = *req.AddedPrice
		}
		if err := validateStruct(flavour); err != nil {
			return err
		}
		if err := ensureUniqueFlavourName(tx, flavour.Name, flavour.ID); err != nil {
			return err
		}

		updates := map[string]interface{}{"name": flavour.Name, "added_price": flavour.AddedPrice}
		if err := tx.Model(&models.Flavour{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if req.AddedPrice == nil {
			return nil
		}
		return updateFlavourPrice(tx, id)
	})
	if err != nil {
		return models.Flavour{}, err
	}
	log.WithFields(logrus.Fields{"flavour_id": id, "added_price": flavour.AddedPrice}).Info("Flavour updated")
	return flavour, nil
}

func (s *flavourService) DeleteFlavour(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var flavour models.Flavour
		if err := tx.First(&flavour, id).Error; err != nil {
			return notFoundOr(err, "flavour", id)
		}
		var pizzaIDs []uint
		if err := tx.Table("pizza_flavours").Where("flavour_id = ?", id).Pluck("pizza_id", &pizzaIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM pizza_flavours WHERE flavour_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&flavour).Error; err != nil {
			return err
		}
		return repricePizzas(tx, pizzaIDs)
	})
	if err != nil {
		return err
	}
	log.WithField("flavour_id", id).Info("Flavour deleted")
	return nil
}

func ensureUniqueFlavourName(tx *gorm.DB, name string, excludeID uint) error {
	var count int64
	query := tx.Model(&models.Flavour{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check flavour name: %w", err)
	}
	if count > 0 {
		return newValidationError("name", "flavour with this name already exists.")
	}
	return nil
}
