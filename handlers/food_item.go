package handlers

import (
	"errors"
	"net/http"

	"food-menu-api/models"
	"food-menu-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FoodItemHandler struct {
	service *services.FoodItemService
}

func NewFoodItemHandler(service *services.FoodItemService) *FoodItemHandler {
	return &FoodItemHandler{service: service}
}

// List returns all menu items, optionally filtered by category or dietary tag
func (h *FoodItemHandler) List(c *gin.Context) {
	items, err := h.service.List()
	if err != nil {
		h.serverError(c, "list food items", err)
		return
	}

	if category := c.Query("category"); category != "" {
		items = filterByCategory(items, models.FoodCategory(category))
	}
	if tag := c.Query("dietary_tag"); tag != "" {
		items = filterByTag(items, models.DietaryTag(tag))
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
	})
}

// Get returns a single menu item by ID
func (h *FoodItemHandler) Get(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(id)
	if errors.Is(err, services.ErrFoodItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	if err != nil {
		h.serverError(c, "get food item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Create adds a new item to the menu
func (h *FoodItemHandler) Create(c *gin.Context) {
	var req services.CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.service.Create(req)
	if h.handled(c, "create food item", err) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item created", "item": item})
}

// Update applies a partial update; omitted fields keep their stored values
func (h *FoodItemHandler) Update(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req services.UpdateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.service.Update(id, req)
	if h.handled(c, "update food item", err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "item": item})
}

// Delete hard-removes an item from the menu
func (h *FoodItemHandler) Delete(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(id)
	if err != nil {
		h.serverError(c, "delete food item", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted"})
}

// handled maps service errors for create/update onto HTTP responses and
// reports whether the request is finished.
func (h *FoodItemHandler) handled(c *gin.Context, op string, err error) bool {
	if err == nil {
		return false
	}

	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
	case errors.Is(err, services.ErrFoodItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
	default:
		h.serverError(c, op, err)
	}
	return true
}

func (h *FoodItemHandler) itemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food item ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *FoodItemHandler) serverError(c *gin.Context, op string, err error) {
	logrus.WithError(err).Error("failed to " + op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

func filterByCategory(items []models.FoodItem, category models.FoodCategory) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func filterByTag(items []models.FoodItem, tag models.DietaryTag) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if it.DietaryTag == tag {
			out = append(out, it)
		}
	}
	return out
}
