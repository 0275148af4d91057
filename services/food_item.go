package services

import (
	"time"

	"food-menu-api/models"
	"food-menu-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFoodItemRequest carries a full new item. Price is a pointer so that a
// missing price is distinguishable from an explicit zero.
type CreateFoodItemRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       *decimal.Decimal    `json:"price"`
	Category    models.FoodCategory `json:"category"`
	DietaryTag  models.DietaryTag   `json:"dietary_tag"`
}

// UpdateFoodItemRequest is a partial update: every field is optional and an
// omitted field leaves the stored value unchanged.
type UpdateFoodItemRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *decimal.Decimal     `json:"price"`
	Category    *models.FoodCategory `json:"category"`
	DietaryTag  *models.DietaryTag   `json:"dietary_tag"`
}

// FoodItemService orchestrates validation and persistence for menu items. It
// is safe to call concurrently for different IDs; concurrent updates to the
// same ID are last-write-wins (plain read-merge-write, no version token).
type FoodItemService struct {
	repo repository.FoodItemRepository
}

func NewFoodItemService(repo repository.FoodItemRepository) *FoodItemService {
	return &FoodItemService{repo: repo}
}

// List returns every item in the order the repository supplies them.
func (s *FoodItemService) List() ([]models.FoodItem, error) {
	return s.repo.FindAll()
}

// Get fetches one item, returning ErrFoodItemNotFound when the ID is absent.
func (s *FoodItemService) Get(id uuid.UUID) (*models.FoodItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFoodItemNotFound
	}
	return item, nil
}

// Create validates the full request, then persists a new item with a fresh ID
// and CreatedAt == UpdatedAt. Nothing is written when validation fails.
func (s *FoodItemService) Create(req CreateFoodItemRequest) (*models.FoodItem, error) {
	if errs := validateCreate(req); errs.Any() {
		return nil, &ValidationError{Fields: errs}
	}

	now := time.Now().UTC()
	item := models.FoodItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		DietaryTag:  req.DietaryTag,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the supplied fields onto the stored item and bumps UpdatedAt.
// The existence check runs first, so an unknown ID is reported as not found
// without validating the request; a validation failure writes nothing.
func (s *FoodItemService) Update(id uuid.UUID, req UpdateFoodItemRequest) (*models.FoodItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFoodItemNotFound
	}

	if errs := validateUpdate(req); errs.Any() {
		return nil, &ValidationError{Fields: errs}
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.DietaryTag != nil {
		item.DietaryTag = *req.DietaryTag
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item outright. It reports false when the ID is absent;
// there is no soft delete.
func (s *FoodItemService) Delete(id uuid.UUID) (bool, error) {
	return s.repo.Delete(id)
}
