package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"food-menu-api/models"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

// validateCreate checks every rule on a full create request and collects all
// violations; it never short-circuits across fields.
func validateCreate(req CreateFoodItemRequest) FieldErrors {
	errs := FieldErrors{}

	checkName(errs, req.Name)
	checkDescription(errs, req.Description)
	if req.Price == nil {
		errs.Add("price", "price is required")
	} else {
		checkPrice(errs, *req.Price)
	}
	if req.Category == "" {
		errs.Add("category", "category is required")
	} else {
		checkCategory(errs, req.Category)
	}
	if req.DietaryTag != "" {
		checkDietaryTag(errs, req.DietaryTag)
	}

	return errs
}

// validateUpdate checks only the fields actually supplied; omitted fields are
// left for the merge step to keep unchanged.
func validateUpdate(req UpdateFoodItemRequest) FieldErrors {
	errs := FieldErrors{}

	if req.Name != nil {
		checkName(errs, *req.Name)
	}
	if req.Description != nil {
		checkDescription(errs, *req.Description)
	}
	if req.Price != nil {
		checkPrice(errs, *req.Price)
	}
	if req.Category != nil {
		checkCategory(errs, *req.Category)
	}
	if req.DietaryTag != nil {
		checkDietaryTag(errs, *req.DietaryTag)
	}

	return errs
}

func checkName(errs FieldErrors, name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs.Add("name", "name is required")
		return
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		errs.Add("name", fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
}

func checkDescription(errs FieldErrors, description string) {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		errs.Add("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
}

func checkPrice(errs FieldErrors, price decimal.Decimal) {
	if !price.IsPositive() {
		errs.Add("price", "price must be greater than zero")
	}
}

func checkCategory(errs FieldErrors, category models.FoodCategory) {
	if !category.Valid() {
		errs.Add("category", "category must be one of: "+joinCategories())
	}
}

func checkDietaryTag(errs FieldErrors, tag models.DietaryTag) {
	if !tag.Valid() {
		errs.Add("dietary_tag", "dietary tag must be one of: "+joinTags())
	}
}

func joinCategories() string {
	names := make([]string, len(models.FoodCategories))
	for i, c := range models.FoodCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinTags() string {
	names := make([]string, len(models.DietaryTags))
	for i, t := range models.DietaryTags {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
