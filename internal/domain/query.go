package domain

// PageSpec is 1-based pagination. Page and Limit are always positive after
// translation; defaults are applied by the query translator.
type PageSpec struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p PageSpec) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages computes the page count for a total row count.
func (p PageSpec) Pages(total int64) int {
	if p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// PostQuery filters chronicle posts. A nil Published means no filter.
type PostQuery struct {
	Published *bool    `json:"published,omitempty"`
	Page      PageSpec `json:"page"`
}

// LoreQuery filters lore entries. Empty strings mean no filter, and a
// MaxSecretLevel of 0 means no secrecy ceiling. Inactive entries are never
// returned regardless of the query.
type LoreQuery struct {
	Category       string   `json:"category,omitempty"`
	Importance     string   `json:"importance,omitempty"`
	MaxSecretLevel int      `json:"maxSecretLevel,omitempty"`
	Search         string   `json:"search,omitempty"`
	Page           PageSpec `json:"page"`
}

// InventoryQuery filters catalog items. A nil InStock means no stock filter;
// true means in stock with positive quantity, false means the complement.
type InventoryQuery struct {
	Category string   `json:"category,omitempty"`
	Rarity   string   `json:"rarity,omitempty"`
	InStock  *bool    `json:"inStock,omitempty"`
	Search   string   `json:"search,omitempty"`
	Page     PageSpec `json:"page"`
}
