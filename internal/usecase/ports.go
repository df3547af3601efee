package usecase

import (
	"context"
	"io"
	"time"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// PostRepository defines persistence for chronicle posts. Posts are never
// deleted; the asymmetry with lore and inventory is deliberate.
type PostRepository interface {
	Search(ctx context.Context, q domain.PostQuery) ([]domain.Post, int64, error)
	GetByID(ctx context.Context, id string) (domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (domain.Post, error)
	Create(ctx context.Context, post domain.Post) (domain.Post, error)
	Update(ctx context.Context, id string, post domain.Post) (domain.Post, error)
}

// LoreRepository defines persistence for lore entries. Deletion is a soft
// flag flip; reads only ever see active rows.
type LoreRepository interface {
	Search(ctx context.Context, q domain.LoreQuery) ([]domain.LoreEntry, int64, error)
	Create(ctx context.Context, entry domain.LoreEntry) (domain.LoreEntry, error)
	Update(ctx context.Context, id string, entry domain.LoreEntry) (domain.LoreEntry, error)
	SetInactive(ctx context.Context, id string) error
}

// InventoryRepository defines persistence for catalog items.
type InventoryRepository interface {
	Search(ctx context.Context, q domain.InventoryQuery) ([]domain.InventoryItem, int64, error)
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Update(ctx context.Context, id string, item domain.InventoryItem) (domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore persists opaque session tokens. Get returns (nil, nil) for an
// unknown or expired token.
type SessionStore interface {
	Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.Identity, error)
	Delete(ctx context.Context, token string) error
}

// IdentityProvider encapsulates the OAuth exchange with the identity host.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (domain.Identity, error)
}

// ImageStore pushes uploaded images to external storage.
type ImageStore interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (domain.UploadedImage, error)
}
