package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/grezzle/goblin-closet/internal/domain"
)

type mockPostRepo struct {
	stored  map[string]domain.Post
	creates int
	updates int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{stored: map[string]domain.Post{}}
}

func (m *mockPostRepo) Search(ctx context.Context, q domain.PostQuery) ([]domain.Post, int64, error) {
	var out []domain.Post
	for _, p := range m.stored {
		if q.Published != nil && p.IsPublished != *q.Published {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (domain.Post, error) {
	p, ok := m.stored[id]
	if !ok {
		return domain.Post{}, domain.NotFoundError{Resource: "post"}
	}
	return p, nil
}

func (m *mockPostRepo) GetBySlug(ctx context.Context, slug string) (domain.Post, error) {
	for _, p := range m.stored {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Post{}, domain.NotFoundError{Resource: "post"}
}

func (m *mockPostRepo) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	m.creates++
	post.ID = "post-1"
	m.stored[post.ID] = post
	return post, nil
}

func (m *mockPostRepo) Update(ctx context.Context, id string, post domain.Post) (domain.Post, error) {
	m.updates++
	existing, ok := m.stored[id]
	if !ok {
		return domain.Post{}, domain.NotFoundError{Resource: "post"}
	}
	post.ID = id
	post.CreatedAt = existing.CreatedAt
	m.stored[id] = post
	return post, nil
}

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis) }
}

func TestPostCreateGeneratesSlugAndDefaults(t *testing.T) {
	repo := newMockPostRepo()
	uc := NewPostUsecase(repo)
	uc.now = fixedClock(1724800123456)

	post, err := uc.Create(context.Background(), PostInput{Title: "A B C!", Content: "body"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Slug != "a-b-c-123456" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
	if post.GoblinRating != 3 {
		t.Fatalf("expected default rating 3, got %d", post.GoblinRating)
	}
	if post.PublishedAt != nil {
		t.Fatalf("unpublished post should have no publish timestamp")
	}
}

func TestPostCreateStampsPublishTime(t *testing.T) {
	repo := newMockPostRepo()
	uc := NewPostUsecase(repo)
	uc.now = fixedClock(1724800123456)

	post, err := uc.Create(context.Background(), PostInput{Title: "t", Content: "c", IsPublished: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(time.UnixMilli(1724800123456)) {
		t.Fatalf("publish timestamp not stamped: %v", post.PublishedAt)
	}
}

func TestPostCreateRequiresTitleAndContent(t *testing.T) {
	uc := NewPostUsecase(newMockPostRepo())

	_, err := uc.Create(context.Background(), PostInput{Title: "only title"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Missing required fields") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestPostCreateRejectsOutOfRangeRating(t *testing.T) {
	uc := NewPostUsecase(newMockPostRepo())

	rating := 7
	_, err := uc.Create(context.Background(), PostInput{Title: "t", Content: "c", GoblinRating: &rating})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPostUpdateKeepsSlugAndStampsFirstPublish(t *testing.T) {
	repo := newMockPostRepo()
	uc := NewPostUsecase(repo)
	uc.now = fixedClock(1724800123456)

	created, err := uc.Create(context.Background(), PostInput{Title: "Original Title", Content: "c"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	uc.now = fixedClock(1724900000000)
	updated, err := uc.Update(context.Background(), created.ID, PostInput{
		Title: "Renamed Title", Content: "c2", IsPublished: true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != created.Slug {
		t.Fatalf("slug must never be recomputed: %q vs %q", updated.Slug, created.Slug)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(time.UnixMilli(1724900000000)) {
		t.Fatalf("first publish not stamped: %v", updated.PublishedAt)
	}

	// Republishing later keeps the original timestamp.
	uc.now = fixedClock(1725000000000)
	again, err := uc.Update(context.Background(), created.ID, PostInput{
		Title: "Renamed Title", Content: "c2", IsPublished: true,
	})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if !again.PublishedAt.Equal(time.UnixMilli(1724900000000)) {
		t.Fatalf("publish timestamp must survive republish: %v", again.PublishedAt)
	}
}

func TestPostUpdateIsIdempotent(t *testing.T) {
	repo := newMockPostRepo()
	uc := NewPostUsecase(repo)
	uc.now = fixedClock(1724800123456)

	created, err := uc.Create(context.Background(), PostInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := PostInput{Title: "t2", Content: "c2", Tags: []string{"x"}}
	first, err := uc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := uc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical replaces must converge: %+v vs %+v", first, second)
	}
}

func TestPostUpdateUnknownIDIsNotFound(t *testing.T) {
	uc := NewPostUsecase(newMockPostRepo())

	_, err := uc.Update(context.Background(), "missing", PostInput{Title: "t", Content: "c"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostUpdateRequiresID(t *testing.T) {
	uc := NewPostUsecase(newMockPostRepo())

	_, err := uc.Update(context.Background(), "", PostInput{Title: "t", Content: "c"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
