package usecase

import (
	"context"
	"fmt"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// LoreInput is the payload accepted for creating or replacing a lore entry.
// SecretLevel is a pointer so an absent level can fall back to the default.
type LoreInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`

	History *domain.HistoryDetail `json:"history"`
	Statute *domain.StatuteDetail `json:"statute"`

	Importance  string   `json:"importance"`
	SecretLevel *int     `json:"secretLevel"`
	RelatedPost []string `json:"relatedPosts"`
	Tags        []string `json:"tags"`
}

type LoreUsecase struct {
	repo LoreRepository
}

func NewLoreUsecase(repo LoreRepository) *LoreUsecase {
	return &LoreUsecase{repo: repo}
}

func (uc *LoreUsecase) List(ctx context.Context, q domain.LoreQuery) ([]domain.LoreEntry, int64, error) {
	return uc.repo.Search(ctx, q)
}

func (uc *LoreUsecase) Create(ctx context.Context, input LoreInput) (domain.LoreEntry, error) {
	entry, err := uc.validate(input)
	if err != nil {
		return domain.LoreEntry{}, err
	}
	entry.IsActive = true
	return uc.repo.Create(ctx, entry)
}

func (uc *LoreUsecase) Update(ctx context.Context, id string, input LoreInput) (domain.LoreEntry, error) {
	if id == "" {
		return domain.LoreEntry{}, domain.ValidationError{Message: "Lore ID is required for updates"}
	}
	entry, err := uc.validate(input)
	if err != nil {
		return domain.LoreEntry{}, err
	}
	entry.IsActive = true
	return uc.repo.Update(ctx, id, entry)
}

// Delete flips the entry inactive. The row survives.
func (uc *LoreUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ValidationError{Message: "Lore ID is required for deletion"}
	}
	return uc.repo.SetInactive(ctx, id)
}

func (uc *LoreUsecase) validate(input LoreInput) (domain.LoreEntry, error) {
	if input.Title == "" || input.Category == "" || input.Content == "" {
		return domain.LoreEntry{}, domain.ValidationError{Message: "Missing required fields: title, category, and content"}
	}
	if !domain.IsLoreCategory(input.Category) {
		return domain.LoreEntry{}, domain.ValidationError{Message: fmt.Sprintf("unknown category %q", input.Category)}
	}

	if err := validateVariant(input); err != nil {
		return domain.LoreEntry{}, err
	}

	importance := input.Importance
	if importance == "" {
		importance = domain.ImportanceUseful
	}
	if !domain.IsImportance(importance) {
		return domain.LoreEntry{}, domain.ValidationError{Message: fmt.Sprintf("unknown importance %q", input.Importance)}
	}

	level := domain.SecretLevelDefault
	if input.SecretLevel != nil {
		level = *input.SecretLevel
	}
	if level < domain.SecretLevelMin || level > domain.SecretLevelMax {
		return domain.LoreEntry{}, domain.ValidationError{Message: "secretLevel must be between 1 and 10"}
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.LoreEntry{
		Title:       input.Title,
		Category:    input.Category,
		Content:     input.Content,
		History:     input.History,
		Statute:     input.Statute,
		Importance:  importance,
		SecretLevel: level,
		RelatedPost: input.RelatedPost,
		Tags:        tags,
	}, nil
}

// validateVariant enforces the category-conditional shape: exactly the detail
// demanded by the category, never a detail belonging to another one.
func validateVariant(input LoreInput) error {
	switch input.Category {
	case domain.LoreCategoryHistory:
		if input.Statute != nil {
			return domain.ValidationError{Message: "statute fields are only valid for Merchant Laws"}
		}
		h := input.History
		if h == nil {
			return domain.ValidationError{Message: "historyType is required for Goblin History"}
		}
		if h.Type != domain.HistoryTypeEvent && h.Type != domain.HistoryTypeGeneral {
			return domain.ValidationError{Message: fmt.Sprintf("unknown historyType %q", h.Type)}
		}
		if h.Type == domain.HistoryTypeEvent {
			if h.Year == 0 {
				return domain.ValidationError{Message: "year is required for history events"}
			}
			if h.Era != domain.EraOD && h.Era != domain.EraAGG {
				return domain.ValidationError{Message: "era must be OD or AGG"}
			}
		}
	case domain.LoreCategoryMerchantLaws:
		if input.History != nil {
			return domain.ValidationError{Message: "history fields are only valid for Goblin History"}
		}
		if input.Statute == nil || input.Statute.Number == "" {
			return domain.ValidationError{Message: "statuteNumber is required for Merchant Laws"}
		}
	default:
		if input.History != nil || input.Statute != nil {
			return domain.ValidationError{Message: fmt.Sprintf("category %s carries no detail fields", input.Category)}
		}
	}
	return nil
}
