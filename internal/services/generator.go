package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

// GeneratorService produces tailored startup ideas through the AI client and
// lets signed-in users keep the ones they like as drafts.
type GeneratorService interface {
	Generate(ctx context.Context, req GenerateIdeasRequest) ([]GeneratedIdea, string, AISource, error)
	SaveDraft(ctx context.Context, idea GeneratedIdea, source AISource) (*types.IdeaDraft, error)
	ListDrafts(ctx context.Context) ([]*types.IdeaDraft, error)
	DeleteDraft(ctx context.Context, draftID uuid.UUID) error
}

type generatorService struct {
	db        *gorm.DB
	log       *logger.Logger
	ai        AIClient
	draftRepo repos.IdeaDraftRepo
}

func NewGeneratorService(db *gorm.DB, log *logger.Logger, ai AIClient, draftRepo repos.IdeaDraftRepo) GeneratorService {
	return &generatorService{
		db:        db,
		log:       log.With("service", "GeneratorService"),
		ai:        ai,
		draftRepo: draftRepo,
	}
}

func (gs *generatorService) Generate(ctx context.Context, req GenerateIdeasRequest) ([]GeneratedIdea, string, AISource, error) {
	req.Skills = cleanList(req.Skills)
	req.Interests = cleanList(req.Interests)
	req.ProblemAreas = cleanList(req.ProblemAreas)
	if len(req.Skills) == 0 {
		return nil, "", "", fmt.Errorf("at least one skill is required")
	}
	if len(req.Interests) == 0 {
		return nil, "", "", fmt.Errorf("at least one interest is required")
	}

	ideas, marketContext, source := gs.ai.GenerateIdeas(ctx, req)
	return ideas, marketContext, source, nil
}

func (gs *generatorService) SaveDraft(ctx context.Context, idea GeneratedIdea, source AISource) (*types.IdeaDraft, error) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(idea.Title) == "" {
		return nil, fmt.Errorf("draft title is required")
	}

	payload, err := json.Marshal(idea)
	if err != nil {
		return nil, fmt.Errorf("encode draft payload: %w", err)
	}
	draft := &types.IdeaDraft{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     idea.Title,
		Source:    string(source),
		Payload:   datatypes.JSON(payload),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	created, err := gs.draftRepo.Create(ctx, nil, []*types.IdeaDraft{draft})
	if err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return created[0], nil
}

func (gs *generatorService) ListDrafts(ctx context.Context) ([]*types.IdeaDraft, error) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	drafts, err := gs.draftRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load drafts: %w", err)
	}
	return drafts, nil
}

func (gs *generatorService) DeleteDraft(ctx context.Context, draftID uuid.UUID) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if err := gs.draftRepo.DeleteByID(ctx, nil, userID, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
