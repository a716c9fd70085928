package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

type IdeaDraftRepo interface {
	Create(ctx context.Context, tx *gorm.DB, drafts []*types.IdeaDraft) ([]*types.IdeaDraft, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.IdeaDraft, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, userID, draftID uuid.UUID) error
}

type ideaDraftRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaDraftRepo(db *gorm.DB, baseLog *logger.Logger) IdeaDraftRepo {
	return &ideaDraftRepo{db: db, log: baseLog.With("repo", "IdeaDraftRepo")}
}

func (ir *ideaDraftRepo) Create(ctx context.Context, tx *gorm.DB, drafts []*types.IdeaDraft) ([]*types.IdeaDraft, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if len(drafts) == 0 {
		return []*types.IdeaDraft{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (ir *ideaDraftRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.IdeaDraft, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.IdeaDraft
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *ideaDraftRepo) DeleteByID(ctx context.Context, tx *gorm.DB, userID, draftID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", draftID, userID).
		Delete(&types.IdeaDraft{}).Error
}
