package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

type ResearchRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, runs []*types.ResearchRun) ([]*types.ResearchRun, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.ResearchRun, error)
}

type researchRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResearchRunRepo(db *gorm.DB, baseLog *logger.Logger) ResearchRunRepo {
	return &researchRunRepo{db: db, log: baseLog.With("repo", "ResearchRunRepo")}
}

func (rr *researchRunRepo) Create(ctx context.Context, tx *gorm.DB, runs []*types.ResearchRun) ([]*types.ResearchRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(runs) == 0 {
		return []*types.ResearchRun{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (rr *researchRunRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.ResearchRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if limit <= 0 {
		limit = 20
	}
	var results []*types.ResearchRun
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
