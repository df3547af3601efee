package domain

import "time"

// Lore categories form a closed enumeration. Two of them carry extra
// mandatory structure, modeled as variant details below.
const (
	LoreCategoryGoblinCode   = "Goblin Code"
	LoreCategoryMerchantLaws = "Merchant Laws"
	LoreCategoryProtocols    = "Human Interference Protocols"
	LoreCategoryTraditions   = "Ancient Traditions"
	LoreCategoryGeography    = "Closet Geography"
	LoreCategoryTradeSecrets = "Trade Secrets"
	LoreCategoryHistory      = "Goblin History"
	LoreCategoryMagic        = "Magic & Enchantments"
)

var LoreCategories = []string{
	LoreCategoryGoblinCode,
	LoreCategoryMerchantLaws,
	LoreCategoryProtocols,
	LoreCategoryTraditions,
	LoreCategoryGeography,
	LoreCategoryTradeSecrets,
	LoreCategoryHistory,
	LoreCategoryMagic,
}

func IsLoreCategory(s string) bool {
	for _, c := range LoreCategories {
		if s == c {
			return true
		}
	}
	return false
}

const (
	ImportanceSacred    = "Sacred"
	ImportanceImportant = "Important"
	ImportanceUseful    = "Useful"
	ImportanceTrivia    = "Trivia"
)

var Importances = []string{
	ImportanceSacred,
	ImportanceImportant,
	ImportanceUseful,
	ImportanceTrivia,
}

func IsImportance(s string) bool {
	for _, i := range Importances {
		if s == i {
			return true
		}
	}
	return false
}

// ImportanceRank orders importance levels for sorting, highest first.
func ImportanceRank(s string) int {
	switch s {
	case ImportanceSacred:
		return 3
	case ImportanceImportant:
		return 2
	case ImportanceUseful:
		return 1
	default:
		return 0
	}
}

const (
	HistoryTypeEvent   = "Event"
	HistoryTypeGeneral = "General Lore"
)

// Goblin eras: OD (OglethorpeDorper), AGG (A Great Goblin).
const (
	EraOD  = "OD"
	EraAGG = "AGG"
)

const (
	SecretLevelMin     = 1
	SecretLevelMax     = 10
	SecretLevelDefault = 1
)

// HistoryDetail is mandatory when category is Goblin History. Year and Era
// are mandatory only for Event entries.
type HistoryDetail struct {
	Type string `json:"historyType"`
	Year int    `json:"year,omitempty"`
	Era  string `json:"era,omitempty"`
}

// StatuteDetail is mandatory when category is Merchant Laws.
type StatuteDetail struct {
	Number  string `json:"statuteNumber"`
	Section string `json:"section,omitempty"`
	Penalty string `json:"penalty,omitempty"`
}

// LoreEntry is a wiki entry. Exactly one variant detail may be set, keyed by
// category. Deleting a lore entry flips IsActive rather than removing the row.
type LoreEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`

	History *HistoryDetail `json:"history,omitempty"`
	Statute *StatuteDetail `json:"statute,omitempty"`

	Importance  string    `json:"importance"`
	SecretLevel int       `json:"secretLevel"`
	RelatedPost []string  `json:"relatedPosts,omitempty"`
	Tags        []string  `json:"tags"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
