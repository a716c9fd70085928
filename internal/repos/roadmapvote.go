package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

// ErrAlreadyVoted signals the distinguishable duplicate-vote condition so
// callers can treat it differently from generic failure.
var ErrAlreadyVoted = errors.New("visitor already voted for this feature")

type FeatureCount struct {
	FeatureID string `json:"feature_id"`
	Votes     int64  `json:"votes"`
}

type RoadmapVoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, vote *types.RoadmapVote) error
	CountByFeature(ctx context.Context, tx *gorm.DB) ([]FeatureCount, error)
	HasVoted(ctx context.Context, tx *gorm.DB, featureID, visitorID string) (bool, error)
}

type roadmapVoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapVoteRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapVoteRepo {
	return &roadmapVoteRepo{db: db, log: baseLog.With("repo", "RoadmapVoteRepo")}
}

func (rr *roadmapVoteRepo) Create(ctx context.Context, tx *gorm.DB, vote *types.RoadmapVote) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "feature_id"}, {Name: "visitor_id"}},
			DoNothing: true,
		}).
		Create(vote)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyVoted
	}
	return nil
}

func (rr *roadmapVoteRepo) CountByFeature(ctx context.Context, tx *gorm.DB) ([]FeatureCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []FeatureCount
	if err := transaction.WithContext(ctx).
		Model(&types.RoadmapVote{}).
		Select("feature_id, COUNT(*) AS votes").
		Group("feature_id").
		Order("feature_id ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *roadmapVoteRepo) HasVoted(ctx context.Context, tx *gorm.DB, featureID, visitorID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.RoadmapVote{}).
		Where("feature_id = ? AND visitor_id = ?", featureID, visitorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
