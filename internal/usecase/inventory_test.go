package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/grezzle/goblin-closet/internal/domain"
)

type mockInventoryRepo struct {
	stored  map[string]domain.InventoryItem
	deleted []string
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{stored: map[string]domain.InventoryItem{}}
}

func (m *mockInventoryRepo) Search(ctx context.Context, q domain.InventoryQuery) ([]domain.InventoryItem, int64, error) {
	var out []domain.InventoryItem
	for _, i := range m.stored {
		out = append(out, i)
	}
	return out, int64(len(out)), nil
}

func (m *mockInventoryRepo) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.ID = "item-1"
	m.stored[item.ID] = item
	return item, nil
}

func (m *mockInventoryRepo) Update(ctx context.Context, id string, item domain.InventoryItem) (domain.InventoryItem, error) {
	if _, ok := m.stored[id]; !ok {
		return domain.InventoryItem{}, domain.NotFoundError{Resource: "inventory item"}
	}
	item.ID = id
	m.stored[id] = item
	return item, nil
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.stored[id]; !ok {
		return domain.NotFoundError{Resource: "inventory item"}
	}
	delete(m.stored, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func shlingobs(v int64) *int64 { return &v }

func TestInventoryCreateAppliesDefaults(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	item, err := uc.Create(context.Background(), InventoryInput{
		Title: "Sock", Description: "A sock", Picture: "http://x/y.png", Shlingobs: shlingobs(5),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("default quantity = %d, want 1", item.Quantity)
	}
	if !item.InStock {
		t.Fatal("default inStock must be true")
	}
	if item.Category != "Other" {
		t.Fatalf("default category = %q, want Other", item.Category)
	}
	if item.Rarity != "Common" || item.Condition != "Good" {
		t.Fatalf("defaults not applied: %+v", item)
	}
	if item.ImagePosition != "center" {
		t.Fatalf("default image position = %q", item.ImagePosition)
	}
}

func TestInventoryCreateKeepsExplicitZeroQuantity(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	qty := 0
	item, err := uc.Create(context.Background(), InventoryInput{
		Title: "Sock", Description: "d", Picture: "p", Shlingobs: shlingobs(5), Quantity: &qty,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Quantity != 0 {
		t.Fatalf("explicit zero quantity overwritten to %d", item.Quantity)
	}
	if item.Available() {
		t.Fatal("quantity 0 means not available regardless of the flag")
	}
}

func TestInventoryCreateRequiredFields(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	_, err := uc.Create(context.Background(), InventoryInput{
		Title: "Sock", Description: "d", Picture: "p",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for absent shlingobs, got %v", err)
	}
	if !strings.Contains(err.Error(), "shlingobs") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestInventoryCreateExplicitZeroPriceIsValid(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	item, err := uc.Create(context.Background(), InventoryInput{
		Title: "Free Sample", Description: "d", Picture: "p", Shlingobs: shlingobs(0),
	})
	if err != nil {
		t.Fatalf("zero price must be accepted: %v", err)
	}
	if item.Shlingobs != 0 {
		t.Fatalf("price = %d, want 0", item.Shlingobs)
	}
}

func TestInventoryCreateRejectsNegativePrice(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	_, err := uc.Create(context.Background(), InventoryInput{
		Title: "Sock", Description: "d", Picture: "p", Shlingobs: shlingobs(-1),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInventoryCreateRejectsUnknownRarity(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	_, err := uc.Create(context.Background(), InventoryInput{
		Title: "Sock", Description: "d", Picture: "p", Shlingobs: shlingobs(5), Rarity: "Mythic",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInventoryDeleteIsHard(t *testing.T) {
	repo := newMockInventoryRepo()
	uc := NewInventoryUsecase(repo)

	item, err := uc.Create(context.Background(), InventoryInput{
		Title: "Sock", Description: "d", Picture: "p", Shlingobs: shlingobs(5),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.stored[item.ID]; ok {
		t.Fatal("hard delete must remove the row")
	}
}

func TestInventoryDeleteUnknownIDIsNotFound(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInventoryUpdateRequiresID(t *testing.T) {
	uc := NewInventoryUsecase(newMockInventoryRepo())

	_, err := uc.Update(context.Background(), "", InventoryInput{
		Title: "Sock", Description: "d", Picture: "p", Shlingobs: shlingobs(5),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
