package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/grezzle/goblin-closet/internal/domain"
	"github.com/grezzle/goblin-closet/internal/infra/database/models"
)

const loreCollection = "lore"

type LoreRepository struct {
	db    *gorm.DB
	cache *QueryCache
}

func NewLoreRepository(db *gorm.DB, cache *QueryCache) *LoreRepository {
	return &LoreRepository{db: db, cache: cache}
}

func (r *LoreRepository) Search(ctx context.Context, q domain.LoreQuery) ([]domain.LoreEntry, int64, error) {
	key, cacheable := r.cache.Key(loreCollection, q)
	if cacheable {
		var page searchPage[domain.LoreEntry]
		if r.cache.Get(key, &page) {
			return page.Items, page.Total, nil
		}
	}

	tx := r.db.WithContext(ctx).Model(&models.LoreEntry{}).Where("is_active = ?", true)
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Importance != "" {
		tx = tx.Where("importance = ?", q.Importance)
	}
	if q.MaxSecretLevel > 0 {
		tx = tx.Where("secret_level <= ?", q.MaxSecretLevel)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("title ILIKE ? OR content ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "lore count failed")
	}

	var rows []models.LoreEntry
	err := tx.Order("importance_rank DESC, created_at DESC").
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "lore search failed")
	}

	entries := make([]domain.LoreEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}

	if cacheable {
		r.cache.Set(key, searchPage[domain.LoreEntry]{Items: entries, Total: total})
	}
	return entries, total, nil
}

func (r *LoreRepository) Create(ctx context.Context, entry domain.LoreEntry) (domain.LoreEntry, error) {
	row := models.NewLoreEntry(entry)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.LoreEntry{}, errors.Wrap(err, "lore create failed")
	}
	r.cache.Invalidate(loreCollection)
	return row.ToDomain(), nil
}

func (r *LoreRepository) Update(ctx context.Context, id string, entry domain.LoreEntry) (domain.LoreEntry, error) {
	var row models.LoreEntry
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.LoreEntry{}, domain.NotFoundError{Resource: "lore entry"}
	}
	if err != nil {
		return domain.LoreEntry{}, errors.Wrap(err, "lore lookup failed")
	}

	replacement := models.NewLoreEntry(entry)
	replacement.ID = row.ID
	replacement.CreatedAt = row.CreatedAt

	if err := r.db.WithContext(ctx).Save(&replacement).Error; err != nil {
		return domain.LoreEntry{}, errors.Wrap(err, "lore update failed")
	}
	r.cache.Invalidate(loreCollection)
	return replacement.ToDomain(), nil
}

// SetInactive is the lore delete: the row stays, reads stop seeing it.
func (r *LoreRepository) SetInactive(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.LoreEntry{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "lore soft delete failed")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "lore entry"}
	}
	r.cache.Invalidate(loreCollection)
	return nil
}
