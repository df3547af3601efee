package usecase

import (
	"context"
	"fmt"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// InventoryInput is the payload accepted for creating or replacing a catalog
// item. Shlingobs, InStock and Quantity are pointers: absence means "apply
// the default", which is distinct from an explicit zero or false.
type InventoryInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Picture       string `json:"picture"`
	ImagePosition string `json:"imagePosition"`
	Shlingobs     *int64 `json:"shlingobs"`
	Category      string `json:"category"`
	Rarity        string `json:"rarity"`
	Condition     string `json:"condition"`
	InStock       *bool  `json:"inStock"`
	Quantity      *int   `json:"quantity"`
	MerchantNotes string `json:"merchantNotes"`
	AcquiredFrom  string `json:"acquiredFrom"`
}

type InventoryUsecase struct {
	repo InventoryRepository
}

func NewInventoryUsecase(repo InventoryRepository) *InventoryUsecase {
	return &InventoryUsecase{repo: repo}
}

func (uc *InventoryUsecase) List(ctx context.Context, q domain.InventoryQuery) ([]domain.InventoryItem, int64, error) {
	return uc.repo.Search(ctx, q)
}

func (uc *InventoryUsecase) Create(ctx context.Context, input InventoryInput) (domain.InventoryItem, error) {
	item, err := uc.validate(input)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return uc.repo.Create(ctx, item)
}

func (uc *InventoryUsecase) Update(ctx context.Context, id string, input InventoryInput) (domain.InventoryItem, error) {
	if id == "" {
		return domain.InventoryItem{}, domain.ValidationError{Message: "Item ID is required for updates"}
	}
	item, err := uc.validate(input)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return uc.repo.Update(ctx, id, item)
}

func (uc *InventoryUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ValidationError{Message: "Item ID is required for deletion"}
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *InventoryUsecase) validate(input InventoryInput) (domain.InventoryItem, error) {
	if input.Title == "" || input.Description == "" || input.Picture == "" || input.Shlingobs == nil {
		return domain.InventoryItem{}, domain.ValidationError{
			Message: "Missing required fields: title, description, picture, and shlingobs",
		}
	}
	if *input.Shlingobs < 0 {
		return domain.InventoryItem{}, domain.ValidationError{Message: "shlingobs must not be negative"}
	}

	category := input.Category
	if category == "" {
		category = domain.ItemCategoryOther
	}
	if !domain.IsItemCategory(category) {
		return domain.InventoryItem{}, domain.ValidationError{Message: fmt.Sprintf("unknown category %q", input.Category)}
	}

	rarity := input.Rarity
	if rarity == "" {
		rarity = "Common"
	}
	if !domain.IsRarity(rarity) {
		return domain.InventoryItem{}, domain.ValidationError{Message: fmt.Sprintf("unknown rarity %q", input.Rarity)}
	}

	condition := input.Condition
	if condition == "" {
		condition = "Good"
	}
	if !domain.IsCondition(condition) {
		return domain.InventoryItem{}, domain.ValidationError{Message: fmt.Sprintf("unknown condition %q", input.Condition)}
	}

	position := input.ImagePosition
	if position == "" {
		position = "center"
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 0 {
		return domain.InventoryItem{}, domain.ValidationError{Message: "quantity must not be negative"}
	}

	return domain.InventoryItem{
		Title:         input.Title,
		Description:   input.Description,
		Picture:       input.Picture,
		ImagePosition: position,
		Shlingobs:     *input.Shlingobs,
		Category:      category,
		Rarity:        rarity,
		Condition:     condition,
		InStock:       inStock,
		Quantity:      quantity,
		MerchantNotes: input.MerchantNotes,
		AcquiredFrom:  input.AcquiredFrom,
	}, nil
}
