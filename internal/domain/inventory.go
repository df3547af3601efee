package domain

import "time"

const (
	ItemCategoryWeapons     = "Weapons"
	ItemCategoryArmor       = "Armor"
	ItemCategoryPotions     = "Potions"
	ItemCategoryTrinkets    = "Trinkets"
	ItemCategoryStolenGoods = "Stolen Goods"
	ItemCategoryMagical     = "Magical Items"
	ItemCategoryHumanRelics = "Human Relics"
	ItemCategoryOther       = "Other"
)

var ItemCategories = []string{
	ItemCategoryWeapons,
	ItemCategoryArmor,
	ItemCategoryPotions,
	ItemCategoryTrinkets,
	ItemCategoryStolenGoods,
	ItemCategoryMagical,
	ItemCategoryHumanRelics,
	ItemCategoryOther,
}

func IsItemCategory(s string) bool {
	for _, c := range ItemCategories {
		if s == c {
			return true
		}
	}
	return false
}

var Rarities = []string{"Common", "Uncommon", "Rare", "Epic", "Legendary"}

func IsRarity(s string) bool {
	for _, r := range Rarities {
		if s == r {
			return true
		}
	}
	return false
}

var Conditions = []string{"Pristine", "Good", "Fair", "Poor", "Broken"}

func IsCondition(s string) bool {
	for _, c := range Conditions {
		if s == c {
			return true
		}
	}
	return false
}

// InventoryItem is a catalog entry. Prices are in shlingobs. An item with
// quantity 0 is out of stock regardless of the InStock flag.
type InventoryItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Picture       string    `json:"picture"`
	ImagePosition string    `json:"imagePosition"`
	Shlingobs     int64     `json:"shlingobs"`
	Category      string    `json:"category"`
	Rarity        string    `json:"rarity"`
	Condition     string    `json:"condition"`
	InStock       bool      `json:"inStock"`
	Quantity      int       `json:"quantity"`
	MerchantNotes string    `json:"merchantNotes,omitempty"`
	AcquiredFrom  string    `json:"acquiredFrom,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Available reports whether the item can actually be sold.
func (i InventoryItem) Available() bool {
	return i.InStock && i.Quantity > 0
}
