package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodCategory defines the menu sections an item can belong to
type FoodCategory string

const (
	CategoryAppetizers  FoodCategory = "Appetizers"
	CategoryMainCourses FoodCategory = "MainCourses"
	CategoryDesserts    FoodCategory = "Desserts"
	CategoryBeverages   FoodCategory = "Beverages"
	CategorySalads      FoodCategory = "Salads"
	CategorySoups       FoodCategory = "Soups"
)

// FoodCategories lists every defined category, in declaration order.
var FoodCategories = []FoodCategory{
	CategoryAppetizers,
	CategoryMainCourses,
	CategoryDesserts,
	CategoryBeverages,
	CategorySalads,
	CategorySoups,
}

func (c FoodCategory) Valid() bool {
	for _, v := range FoodCategories {
		if c == v {
			return true
		}
	}
	return false
}

// DietaryTag marks an item as matching a dietary restriction
type DietaryTag string

const (
	TagVegetarian DietaryTag = "Vegetarian"
	TagVegan      DietaryTag = "Vegan"
	TagGlutenFree DietaryTag = "GlutenFree"
	TagDairyFree  DietaryTag = "DairyFree"
	TagSpicy      DietaryTag = "Spicy"
)

// DietaryTags lists every defined tag, in declaration order.
var DietaryTags = []DietaryTag{
	TagVegetarian,
	TagVegan,
	TagGlutenFree,
	TagDairyFree,
	TagSpicy,
}

func (t DietaryTag) Valid() bool {
	for _, v := range DietaryTags {
		if t == v {
			return true
		}
	}
	return false
}

// FoodItem is a single entry on the restaurant menu. Timestamps are owned by
// the service layer (gorm auto-timestamping is disabled) so that CreatedAt is
// set exactly once and UpdatedAt bumps only on a successful update.
type FoodItem struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    FoodCategory    `json:"category" gorm:"not null"`
	DietaryTag  DietaryTag      `json:"dietary_tag,omitempty"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime:false"`
}
