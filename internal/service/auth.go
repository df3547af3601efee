package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grezzle/goblin-closet/internal/domain"
	"github.com/grezzle/goblin-closet/internal/usecase"
)

var tracer = otel.Tracer("auth")

const (
	sessionTTL      = 30 * 24 * time.Hour
	resolveCacheTTL = 5 * time.Minute
)

// AuthService mints and resolves sessions backed by the shared session store,
// with a small in-process cache in front so hot requests skip the round trip.
type AuthService struct {
	sessions usecase.SessionStore
	provider usecase.IdentityProvider
	cache    *gocache.Cache
	adminID  string
}

func NewAuthService(
	sessions usecase.SessionStore,
	provider usecase.IdentityProvider,
	adminID string,
) *AuthService {
	return &AuthService{
		sessions: sessions,
		provider: provider,
		cache:    gocache.New(resolveCacheTTL, 10*time.Minute),
		adminID:  adminID,
	}
}

// AuthCodeURL returns the provider authorize URL for the given state.
func (s *AuthService) AuthCodeURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// HandleCallback exchanges the OAuth code and mints a session token.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (string, domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.HandleCallback")
	defer span.End()

	identity, err := s.provider.Exchange(ctx, code)
	if err != nil {
		span.RecordError(err)
		return "", domain.Identity{}, errors.Wrap(err, "identity exchange failed")
	}

	token, err := newSessionToken()
	if err != nil {
		span.RecordError(err)
		return "", domain.Identity{}, err
	}

	if err := s.sessions.Put(ctx, token, identity, sessionTTL); err != nil {
		span.RecordError(err)
		return "", domain.Identity{}, errors.Wrap(err, "session store put failed")
	}

	span.SetAttributes(attribute.String("ExternalID", identity.ExternalID))
	return token, identity, nil
}

// ResolveSession turns an opaque token into an identity. Unknown tokens,
// expired sessions, and store failures all resolve to unauthenticated; no
// error ever reaches the handler from here.
func (s *AuthService) ResolveSession(ctx context.Context, token string) *domain.Identity {
	ctx, span := tracer.Start(ctx, "Auth.Service.ResolveSession")
	defer span.End()

	if token == "" {
		return nil
	}

	if cached, found := s.cache.Get(token); found {
		identity := cached.(domain.Identity)
		return &identity
	}

	identity, err := s.sessions.Get(ctx, token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "session store get failed"))
		return nil
	}
	if identity == nil {
		return nil
	}

	s.cache.Set(token, *identity, gocache.DefaultExpiration)
	span.SetAttributes(attribute.String("ExternalID", identity.ExternalID))
	return identity
}

// Logout drops the session everywhere it is cached.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	s.cache.Delete(token)
	return s.sessions.Delete(ctx, token)
}

// IsAdmin applies the admin policy against the configured account id.
func (s *AuthService) IsAdmin(identity *domain.Identity) bool {
	return domain.IsAdmin(identity, s.adminID)
}

// NewStateToken mints the nonce carried through the OAuth redirect.
func NewStateToken() (string, error) {
	return newSessionToken()
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "session token generation failed")
	}
	return hex.EncodeToString(buf), nil
}
