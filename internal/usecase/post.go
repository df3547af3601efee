package usecase

import (
	"context"
	"time"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// PostInput is the payload accepted for creating or replacing a post.
// GoblinRating is a pointer so an absent rating can fall back to the default.
type PostInput struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Excerpt      string   `json:"excerpt"`
	CoverImage   string   `json:"coverImage"`
	Tags         []string `json:"tags"`
	GoblinRating *int     `json:"goblinRating"`
	IsPublished  bool     `json:"isPublished"`
}

type PostUsecase struct {
	repo PostRepository
	now  func() time.Time
}

func NewPostUsecase(repo PostRepository) *PostUsecase {
	return &PostUsecase{repo: repo, now: time.Now}
}

func (uc *PostUsecase) List(ctx context.Context, q domain.PostQuery) ([]domain.Post, int64, error) {
	return uc.repo.Search(ctx, q)
}

func (uc *PostUsecase) GetBySlug(ctx context.Context, slug string) (domain.Post, error) {
	return uc.repo.GetBySlug(ctx, slug)
}

func (uc *PostUsecase) Create(ctx context.Context, input PostInput) (domain.Post, error) {
	post, err := uc.validate(input)
	if err != nil {
		return domain.Post{}, err
	}

	now := uc.now()
	post.Slug = domain.Slugify(input.Title, now)
	if post.IsPublished {
		post.PublishedAt = &now
	}

	return uc.repo.Create(ctx, post)
}

// Update replaces the stored post. The slug is kept from the stored record,
// and publishedAt is stamped the first time the post flips to published.
func (uc *PostUsecase) Update(ctx context.Context, id string, input PostInput) (domain.Post, error) {
	if id == "" {
		return domain.Post{}, domain.ValidationError{Message: "Post ID is required for updates"}
	}

	post, err := uc.validate(input)
	if err != nil {
		return domain.Post{}, err
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	post.Slug = existing.Slug
	post.PublishedAt = existing.PublishedAt
	if post.IsPublished && post.PublishedAt == nil {
		now := uc.now()
		post.PublishedAt = &now
	}

	return uc.repo.Update(ctx, id, post)
}

func (uc *PostUsecase) validate(input PostInput) (domain.Post, error) {
	if input.Title == "" || input.Content == "" {
		return domain.Post{}, domain.ValidationError{Message: "Missing required fields: title and content"}
	}
	if len(input.Excerpt) > domain.PostExcerptMaxLen {
		return domain.Post{}, domain.ValidationError{Message: "excerpt must be at most 300 characters"}
	}

	rating := domain.PostRatingDefault
	if input.GoblinRating != nil {
		rating = *input.GoblinRating
	}
	if rating < domain.PostRatingMin || rating > domain.PostRatingMax {
		return domain.Post{}, domain.ValidationError{Message: "goblinRating must be between 1 and 5"}
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.Post{
		Title:        input.Title,
		Content:      input.Content,
		Excerpt:      input.Excerpt,
		CoverImage:   input.CoverImage,
		Tags:         tags,
		GoblinRating: rating,
		IsPublished:  input.IsPublished,
	}, nil
}
