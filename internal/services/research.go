package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

// ResearchService runs market research through the AI client and persists
// each run. Signed-in users get a browsable history; anonymous runs are
// stored without a user id for call accounting only.
type ResearchService interface {
	Research(ctx context.Context, query string) (MarketResearch, AISource, error)
	History(ctx context.Context, limit int) ([]*types.ResearchRun, error)
}

type researchService struct {
	db      *gorm.DB
	log     *logger.Logger
	ai      AIClient
	runRepo repos.ResearchRunRepo
}

func NewResearchService(db *gorm.DB, log *logger.Logger, ai AIClient, runRepo repos.ResearchRunRepo) ResearchService {
	return &researchService{
		db:      db,
		log:     log.With("service", "ResearchService"),
		ai:      ai,
		runRepo: runRepo,
	}
}

func (rs *researchService) Research(ctx context.Context, query string) (MarketResearch, AISource, error) {
	if query == "" {
		return MarketResearch{}, "", fmt.Errorf("query is required")
	}

	research, source := rs.ai.Research(ctx, query)

	payload, err := json.Marshal(research)
	if err != nil {
		return MarketResearch{}, "", fmt.Errorf("encode research payload: %w", err)
	}
	run := &types.ResearchRun{
		ID:        uuid.New(),
		Query:     query,
		Source:    string(source),
		Payload:   datatypes.JSON(payload),
		CreatedAt: time.Now(),
	}
	if userID, ok := currentUserID(ctx); ok {
		run.UserID = &userID
	}
	// A persistence failure never blocks the response; the payload already
	// exists and the caller can still render it.
	if _, err := rs.runRepo.Create(ctx, nil, []*types.ResearchRun{run}); err != nil {
		rs.log.Warn("Persisting research run failed", "error", err)
	}
	return research, source, nil
}

func (rs *researchService) History(ctx context.Context, limit int) ([]*types.ResearchRun, error) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	runs, err := rs.runRepo.GetByUserID(ctx, nil, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("load research history: %w", err)
	}
	return runs, nil
}
