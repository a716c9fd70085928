package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

type SavedIdeaRepo interface {
	// Upsert inserts the bookmark row and silently ignores the conflict when
	// the (user_id, idea_id) pair already exists. Saving twice is one row.
	Upsert(ctx context.Context, tx *gorm.DB, saved *types.SavedIdea) error
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ideaID string) error
	Exists(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ideaID string) (bool, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SavedIdea, error)
}

type savedIdeaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSavedIdeaRepo(db *gorm.DB, baseLog *logger.Logger) SavedIdeaRepo {
	return &savedIdeaRepo{db: db, log: baseLog.With("repo", "SavedIdeaRepo")}
}

func (sr *savedIdeaRepo) Upsert(ctx context.Context, tx *gorm.DB, saved *types.SavedIdea) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "idea_id"}},
			DoNothing: true,
		}).
		Create(saved).Error
}

func (sr *savedIdeaRepo) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ideaID string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		Delete(&types.SavedIdea{}).Error
}

func (sr *savedIdeaRepo) Exists(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ideaID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.SavedIdea{}).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *savedIdeaRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SavedIdea, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.SavedIdea
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
