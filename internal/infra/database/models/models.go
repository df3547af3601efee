package models

import (
	"time"

	"github.com/grezzle/goblin-closet/internal/domain"
)

type Post struct {
	ID           string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string     `gorm:"type:text;not null"`
	Slug         string     `gorm:"type:text;not null;index:post_slug,unique"`
	Content      string     `gorm:"type:text;not null"`
	Excerpt      string     `gorm:"type:text"`
	CoverImage   string     `gorm:"type:text"`
	Tags         []string   `gorm:"serializer:json;type:jsonb"`
	GoblinRating int        `gorm:"not null;default:3"`
	IsPublished  bool       `gorm:"not null;default:false;index"`
	PublishedAt  *time.Time `gorm:"type:timestamp with time zone"`
	CreatedAt    time.Time  `gorm:"type:timestamp with time zone;index"`
	UpdatedAt    time.Time  `gorm:"type:timestamp with time zone"`
}

func (p Post) ToDomain() domain.Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Post{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Content:      p.Content,
		Excerpt:      p.Excerpt,
		CoverImage:   p.CoverImage,
		Tags:         tags,
		GoblinRating: p.GoblinRating,
		IsPublished:  p.IsPublished,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewPost(p domain.Post) Post {
	return Post{
		Title:        p.Title,
		Slug:         p.Slug,
		Content:      p.Content,
		Excerpt:      p.Excerpt,
		CoverImage:   p.CoverImage,
		Tags:         p.Tags,
		GoblinRating: p.GoblinRating,
		IsPublished:  p.IsPublished,
		PublishedAt:  p.PublishedAt,
	}
}

// LoreEntry flattens the category-conditional detail fields into nullable
// columns; the domain layer reassembles them into the proper variant.
// ImportanceRank is denormalized at write time so listing can sort on it.
type LoreEntry struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title    string `gorm:"type:text;not null"`
	Category string `gorm:"type:text;not null;index"`
	Content  string `gorm:"type:text;not null"`

	HistoryType *string `gorm:"type:text"`
	Year        *int
	Era         *string `gorm:"type:text"`

	StatuteNumber  *string `gorm:"type:text"`
	StatuteSection *string `gorm:"type:text"`
	StatutePenalty *string `gorm:"type:text"`

	Importance     string    `gorm:"type:text;not null;default:'Useful'"`
	ImportanceRank int       `gorm:"not null;default:1;index"`
	SecretLevel    int       `gorm:"not null;default:1;index"`
	RelatedPost    []string  `gorm:"serializer:json;type:jsonb;column:related_posts"`
	Tags           []string  `gorm:"serializer:json;type:jsonb"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time `gorm:"type:timestamp with time zone;index"`
	UpdatedAt      time.Time `gorm:"type:timestamp with time zone"`
}

func (l LoreEntry) ToDomain() domain.LoreEntry {
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := domain.LoreEntry{
		ID:          l.ID,
		Title:       l.Title,
		Category:    l.Category,
		Content:     l.Content,
		Importance:  l.Importance,
		SecretLevel: l.SecretLevel,
		RelatedPost: l.RelatedPost,
		Tags:        tags,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}

	if l.Category == domain.LoreCategoryHistory && l.HistoryType != nil {
		detail := domain.HistoryDetail{Type: *l.HistoryType}
		if l.Year != nil {
			detail.Year = *l.Year
		}
		if l.Era != nil {
			detail.Era = *l.Era
		}
		entry.History = &detail
	}

	if l.Category == domain.LoreCategoryMerchantLaws && l.StatuteNumber != nil {
		detail := domain.StatuteDetail{Number: *l.StatuteNumber}
		if l.StatuteSection != nil {
			detail.Section = *l.StatuteSection
		}
		if l.StatutePenalty != nil {
			detail.Penalty = *l.StatutePenalty
		}
		entry.Statute = &detail
	}

	return entry
}

func NewLoreEntry(e domain.LoreEntry) LoreEntry {
	row := LoreEntry{
		Title:          e.Title,
		Category:       e.Category,
		Content:        e.Content,
		Importance:     e.Importance,
		ImportanceRank: domain.ImportanceRank(e.Importance),
		SecretLevel:    e.SecretLevel,
		RelatedPost:    e.RelatedPost,
		Tags:           e.Tags,
		IsActive:       e.IsActive,
	}

	if e.History != nil {
		row.HistoryType = &e.History.Type
		if e.History.Year != 0 {
			row.Year = &e.History.Year
		}
		if e.History.Era != "" {
			row.Era = &e.History.Era
		}
	}

	if e.Statute != nil {
		row.StatuteNumber = &e.Statute.Number
		row.StatuteSection = &e.Statute.Section
		row.StatutePenalty = &e.Statute.Penalty
	}

	return row
}

type InventoryItem struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title         string    `gorm:"type:text;not null"`
	Description   string    `gorm:"type:text;not null"`
	Picture       string    `gorm:"type:text;not null"`
	ImagePosition string    `gorm:"type:text;not null;default:'center'"`
	Shlingobs     int64     `gorm:"not null"`
	Category      string    `gorm:"type:text;not null;default:'Other';index"`
	Rarity        string    `gorm:"type:text;not null;default:'Common';index"`
	Condition     string    `gorm:"type:text;not null;default:'Good'"`
	InStock       bool      `gorm:"not null;default:true;index"`
	Quantity      int       `gorm:"not null;default:1"`
	MerchantNotes string    `gorm:"type:text"`
	AcquiredFrom  string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"type:timestamp with time zone;index"`
	UpdatedAt     time.Time `gorm:"type:timestamp with time zone"`
}

func (i InventoryItem) ToDomain() domain.InventoryItem {
	return domain.InventoryItem{
		ID:            i.ID,
		Title:         i.Title,
		Description:   i.Description,
		Picture:       i.Picture,
		ImagePosition: i.ImagePosition,
		Shlingobs:     i.Shlingobs,
		Category:      i.Category,
		Rarity:        i.Rarity,
		Condition:     i.Condition,
		InStock:       i.InStock,
		Quantity:      i.Quantity,
		MerchantNotes: i.MerchantNotes,
		AcquiredFrom:  i.AcquiredFrom,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func NewInventoryItem(i domain.InventoryItem) InventoryItem {
	return InventoryItem{
		Title:         i.Title,
		Description:   i.Description,
		Picture:       i.Picture,
		ImagePosition: i.ImagePosition,
		Shlingobs:     i.Shlingobs,
		Category:      i.Category,
		Rarity:        i.Rarity,
		Condition:     i.Condition,
		InStock:       i.InStock,
		Quantity:      i.Quantity,
		MerchantNotes: i.MerchantNotes,
		AcquiredFrom:  i.AcquiredFrom,
	}
}
