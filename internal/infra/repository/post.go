package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/grezzle/goblin-closet/internal/domain"
	"github.com/grezzle/goblin-closet/internal/infra/database/models"
)

const postCollection = "posts"

type PostRepository struct {
	db    *gorm.DB
	cache *QueryCache
}

func NewPostRepository(db *gorm.DB, cache *QueryCache) *PostRepository {
	return &PostRepository{db: db, cache: cache}
}

func (r *PostRepository) Search(ctx context.Context, q domain.PostQuery) ([]domain.Post, int64, error) {
	key, cacheable := r.cache.Key(postCollection, q)
	if cacheable {
		var page searchPage[domain.Post]
		if r.cache.Get(key, &page) {
			return page.Items, page.Total, nil
		}
	}

	tx := r.db.WithContext(ctx).Model(&models.Post{})
	if q.Published != nil {
		tx = tx.Where("is_published = ?", *q.Published)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "post count failed")
	}

	var rows []models.Post
	err := tx.Order("created_at DESC").
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "post search failed")
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.ToDomain())
	}

	if cacheable {
		r.cache.Set(key, searchPage[domain.Post]{Items: posts, Total: total})
	}
	return posts, total, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (domain.Post, error) {
	var row models.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, domain.NotFoundError{Resource: "post"}
	}
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "post lookup failed")
	}
	return row.ToDomain(), nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (domain.Post, error) {
	var row models.Post
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, domain.NotFoundError{Resource: "post"}
	}
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "post lookup failed")
	}
	return row.ToDomain(), nil
}

func (r *PostRepository) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	row := models.NewPost(post)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Post{}, errors.Wrap(err, "post create failed")
	}
	r.cache.Invalidate(postCollection)
	return row.ToDomain(), nil
}

// Update replaces the stored document. Slug and creation time survive; the
// caller has already resolved publish stamping.
func (r *PostRepository) Update(ctx context.Context, id string, post domain.Post) (domain.Post, error) {
	var row models.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, domain.NotFoundError{Resource: "post"}
	}
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "post lookup failed")
	}

	row.Title = post.Title
	row.Content = post.Content
	row.Excerpt = post.Excerpt
	row.CoverImage = post.CoverImage
	row.Tags = post.Tags
	row.GoblinRating = post.GoblinRating
	row.IsPublished = post.IsPublished
	row.PublishedAt = post.PublishedAt

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return domain.Post{}, errors.Wrap(err, "post update failed")
	}
	r.cache.Invalidate(postCollection)
	return row.ToDomain(), nil
}
