package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisc "github.com/Stevekaplanai/venturevault-backend/internal/clients/redis"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

const (
	voteCountsCacheKey = "roadmap:vote-counts"
	voteCountsCacheTTL = 15 * time.Second
)

// VoteService records anonymous roadmap feature votes, one per visitor per
// feature. A duplicate is reported as repos.ErrAlreadyVoted so handlers can
// answer with the distinct already-voted condition instead of a generic
// failure.
type VoteService interface {
	Vote(ctx context.Context, featureID, visitorID string) error
	Counts(ctx context.Context) ([]repos.FeatureCount, error)
	HasVoted(ctx context.Context, featureID, visitorID string) (bool, error)
}

type voteService struct {
	db       *gorm.DB
	log      *logger.Logger
	voteRepo repos.RoadmapVoteRepo
	cache    redisc.Cache // nil when redis is unavailable
}

func NewVoteService(db *gorm.DB, log *logger.Logger, voteRepo repos.RoadmapVoteRepo, cache redisc.Cache) VoteService {
	return &voteService{
		db:       db,
		log:      log.With("service", "VoteService"),
		voteRepo: voteRepo,
		cache:    cache,
	}
}

func (vs *voteService) Vote(ctx context.Context, featureID, visitorID string) error {
	featureID = strings.TrimSpace(featureID)
	visitorID = strings.TrimSpace(visitorID)
	if featureID == "" {
		return fmt.Errorf("featureId is required")
	}
	if visitorID == "" {
		return fmt.Errorf("visitorId is required")
	}

	vote := &types.RoadmapVote{
		ID:        uuid.New(),
		FeatureID: featureID,
		VisitorID: visitorID,
		CreatedAt: time.Now(),
	}
	if err := vs.voteRepo.Create(ctx, nil, vote); err != nil {
		if errors.Is(err, repos.ErrAlreadyVoted) {
			return err
		}
		return fmt.Errorf("record vote: %w", err)
	}

	// The cached tally is stale now; drop it so the next read recounts.
	if vs.cache != nil {
		if err := vs.cache.Delete(ctx, voteCountsCacheKey); err != nil {
			vs.log.Debug("Invalidating vote count cache failed", "error", err)
		}
	}
	return nil
}

// HasVoted lets clients rebuild their local participation state, for
// example after clearing browser storage.
func (vs *voteService) HasVoted(ctx context.Context, featureID, visitorID string) (bool, error) {
	featureID = strings.TrimSpace(featureID)
	visitorID = strings.TrimSpace(visitorID)
	if featureID == "" || visitorID == "" {
		return false, fmt.Errorf("featureId and visitorId are required")
	}
	voted, err := vs.voteRepo.HasVoted(ctx, nil, featureID, visitorID)
	if err != nil {
		return false, fmt.Errorf("check vote: %w", err)
	}
	return voted, nil
}

func (vs *voteService) Counts(ctx context.Context) ([]repos.FeatureCount, error) {
	if vs.cache != nil {
		var cached []repos.FeatureCount
		if hit, err := vs.cache.GetJSON(ctx, voteCountsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}
	counts, err := vs.voteRepo.CountByFeature(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}
	if counts == nil {
		counts = []repos.FeatureCount{}
	}
	if vs.cache != nil {
		if err := vs.cache.SetJSON(ctx, voteCountsCacheKey, counts, voteCountsCacheTTL); err != nil {
			vs.log.Debug("Caching vote counts failed", "error", err)
		}
	}
	return counts, nil
}
