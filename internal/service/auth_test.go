package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/grezzle/goblin-closet/internal/domain"
)

type stubSessionStore struct {
	sessions map[string]domain.Identity
	gets     int
	failGet  bool
	failPut  bool
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: map[string]domain.Identity{}}
}

func (s *stubSessionStore) Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	if s.failPut {
		return errors.New("store down")
	}
	s.sessions[token] = identity
	return nil
}

func (s *stubSessionStore) Get(ctx context.Context, token string) (*domain.Identity, error) {
	s.gets++
	if s.failGet {
		return nil, errors.New("store down")
	}
	identity, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

func (s *stubSessionStore) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type stubProvider struct {
	identity domain.Identity
	failure  error
}

func (p *stubProvider) AuthCodeURL(state string) string {
	return "https://id.example/authorize?state=" + state
}

func (p *stubProvider) Exchange(ctx context.Context, code string) (domain.Identity, error) {
	if p.failure != nil {
		return domain.Identity{}, p.failure
	}
	return p.identity, nil
}

func TestHandleCallbackMintsSession(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(store, &stubProvider{identity: domain.Identity{ExternalID: "123", DisplayName: "grezzle"}}, "123")

	token, identity, err := svc.HandleCallback(context.Background(), "code")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if identity.ExternalID != "123" {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if _, ok := store.sessions[token]; !ok {
		t.Fatal("session not persisted")
	}
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(store, &stubProvider{failure: errors.New("denied")}, "123")

	if _, _, err := svc.HandleCallback(context.Background(), "code"); err == nil {
		t.Fatal("expected an error")
	}
	if len(store.sessions) != 0 {
		t.Fatal("no session should be written on a failed exchange")
	}
}

func TestResolveSessionCachesLookups(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["tok"] = domain.Identity{ExternalID: "123"}
	svc := NewAuthService(store, &stubProvider{}, "123")

	first := svc.ResolveSession(context.Background(), "tok")
	if first == nil || first.ExternalID != "123" {
		t.Fatalf("unexpected identity %+v", first)
	}
	second := svc.ResolveSession(context.Background(), "tok")
	if second == nil || second.ExternalID != "123" {
		t.Fatalf("unexpected identity %+v", second)
	}
	if store.gets != 1 {
		t.Fatalf("second resolve should hit the cache, store saw %d gets", store.gets)
	}
}

func TestResolveSessionUnknownToken(t *testing.T) {
	svc := NewAuthService(newStubSessionStore(), &stubProvider{}, "123")

	if identity := svc.ResolveSession(context.Background(), "nope"); identity != nil {
		t.Fatalf("unknown token resolved to %+v", identity)
	}
	if identity := svc.ResolveSession(context.Background(), ""); identity != nil {
		t.Fatalf("empty token resolved to %+v", identity)
	}
}

func TestResolveSessionStoreFailureIsUnauthenticated(t *testing.T) {
	store := newStubSessionStore()
	store.failGet = true
	svc := NewAuthService(store, &stubProvider{}, "123")

	if identity := svc.ResolveSession(context.Background(), "tok"); identity != nil {
		t.Fatalf("store failure must resolve to nil, got %+v", identity)
	}
}

func TestLogoutDropsCacheAndStore(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["tok"] = domain.Identity{ExternalID: "123"}
	svc := NewAuthService(store, &stubProvider{}, "123")

	// Warm the cache, then log out.
	if identity := svc.ResolveSession(context.Background(), "tok"); identity == nil {
		t.Fatal("expected identity before logout")
	}
	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if identity := svc.ResolveSession(context.Background(), "tok"); identity != nil {
		t.Fatalf("session survived logout: %+v", identity)
	}
}

func TestIsAdminMatchesConfiguredAccount(t *testing.T) {
	svc := NewAuthService(newStubSessionStore(), &stubProvider{}, "123")

	if !svc.IsAdmin(&domain.Identity{ExternalID: "123"}) {
		t.Fatal("configured account must be admin")
	}
	if svc.IsAdmin(&domain.Identity{ExternalID: "456"}) {
		t.Fatal("other accounts must not be admin")
	}
	if svc.IsAdmin(nil) {
		t.Fatal("nil identity must not be admin")
	}
}

func TestNewStateTokenIsUnique(t *testing.T) {
	a, err := NewStateToken()
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	b, err := NewStateToken()
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	if a == b {
		t.Fatal("state tokens must not repeat")
	}
	if len(a) != 64 {
		t.Fatalf("unexpected token length %d", len(a))
	}
}
