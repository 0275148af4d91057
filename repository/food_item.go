package repository

import (
	"errors"

	"food-menu-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodItemRepository is the storage seam the service depends on. FindByID
// returns (nil, nil) when no row exists; Delete reports whether a row was
// actually removed. No transaction contract beyond single-row atomicity.
type FoodItemRepository interface {
	FindAll() ([]models.FoodItem, error)
	FindByID(id uuid.UUID) (*models.FoodItem, error)
	Create(item *models.FoodItem) error
	Update(item *models.FoodItem) error
	Delete(id uuid.UUID) (bool, error)
}

type gormFoodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) FoodItemRepository {
	return &gormFoodItemRepository{db: db}
}

func (r *gormFoodItemRepository) FindAll() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.Order("created_at").Find(&items).Error
	return items, err
}

func (r *gormFoodItemRepository) FindByID(id uuid.UUID) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormFoodItemRepository) Create(item *models.FoodItem) error {
	return r.db.Create(item).Error
}

func (r *gormFoodItemRepository) Update(item *models.FoodItem) error {
	return r.db.Save(item).Error
}

func (r *gormFoodItemRepository) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.FoodItem{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
