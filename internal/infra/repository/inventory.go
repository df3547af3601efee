package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/grezzle/goblin-closet/internal/domain"
	"github.com/grezzle/goblin-closet/internal/infra/database/models"
)

const inventoryCollection = "inventory"

// searchVector mirrors the text index of the catalog: title, description and
// merchant notes are searchable, nothing else.
const searchVector = "to_tsvector('english', title || ' ' || description || ' ' || coalesce(merchant_notes, ''))"

type InventoryRepository struct {
	db    *gorm.DB
	cache *QueryCache
}

func NewInventoryRepository(db *gorm.DB, cache *QueryCache) *InventoryRepository {
	return &InventoryRepository{db: db, cache: cache}
}

func (r *InventoryRepository) Search(ctx context.Context, q domain.InventoryQuery) ([]domain.InventoryItem, int64, error) {
	key, cacheable := r.cache.Key(inventoryCollection, q)
	if cacheable {
		var page searchPage[domain.InventoryItem]
		if r.cache.Get(key, &page) {
			return page.Items, page.Total, nil
		}
	}

	tx := r.db.WithContext(ctx).Model(&models.InventoryItem{})
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Rarity != "" {
		tx = tx.Where("rarity = ?", q.Rarity)
	}
	if q.InStock != nil {
		// quantity 0 means out of stock no matter what the flag says
		if *q.InStock {
			tx = tx.Where("in_stock = ? AND quantity > 0", true)
		} else {
			tx = tx.Where("in_stock = ? OR quantity = 0", false)
		}
	}
	if q.Search != "" {
		tx = tx.Where(searchVector+" @@ plainto_tsquery('english', ?)", q.Search)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "inventory count failed")
	}

	if q.Search != "" {
		tx = tx.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ts_rank(" + searchVector + ", plainto_tsquery('english', ?)) DESC, created_at DESC",
			Vars:               []interface{}{q.Search},
			WithoutParentheses: true,
		}})
	} else {
		tx = tx.Order("created_at DESC")
	}

	var rows []models.InventoryItem
	err := tx.Limit(q.Page.Limit).Offset(q.Page.Offset()).Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "inventory search failed")
	}

	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.ToDomain())
	}

	if cacheable {
		r.cache.Set(key, searchPage[domain.InventoryItem]{Items: items, Total: total})
	}
	return items, total, nil
}

func (r *InventoryRepository) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	row := models.NewInventoryItem(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.InventoryItem{}, errors.Wrap(err, "inventory create failed")
	}
	r.cache.Invalidate(inventoryCollection)
	return row.ToDomain(), nil
}

func (r *InventoryRepository) Update(ctx context.Context, id string, item domain.InventoryItem) (domain.InventoryItem, error) {
	var row models.InventoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.InventoryItem{}, domain.NotFoundError{Resource: "inventory item"}
	}
	if err != nil {
		return domain.InventoryItem{}, errors.Wrap(err, "inventory lookup failed")
	}

	replacement := models.NewInventoryItem(item)
	replacement.ID = row.ID
	replacement.CreatedAt = row.CreatedAt

	if err := r.db.WithContext(ctx).Save(&replacement).Error; err != nil {
		return domain.InventoryItem{}, errors.Wrap(err, "inventory update failed")
	}
	r.cache.Invalidate(inventoryCollection)
	return replacement.ToDomain(), nil
}

// Delete removes the row for good. Unlike lore there is no soft flag here.
func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "inventory delete failed")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "inventory item"}
	}
	r.cache.Invalidate(inventoryCollection)
	return nil
}
