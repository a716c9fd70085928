package types

import (
	"time"

	"github.com/google/uuid"
)

// SavedIdea is one (user, idea) bookmark relationship. The composite unique
// index is what makes save idempotent: a second save of the same idea is a
// constraint conflict, never a duplicate row.
type SavedIdea struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_idea_user_idea" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	IdeaID string    `gorm:"not null;uniqueIndex:idx_saved_idea_user_idea;column:idea_id" json:"idea_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (SavedIdea) TableName() string { return "saved_idea" }
