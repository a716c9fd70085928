package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdeaDraft stores one AI-generated idea a user chose to keep. The generated
// payload is recorded verbatim as JSON; drafts never join the curated
// catalog.
type IdeaDraft struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	User    *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title   string         `gorm:"not null;column:title" json:"title"`
	Source  string         `gorm:"not null;column:source" json:"source"` // live | fallback
	Payload datatypes.JSON `gorm:"column:payload" json:"payload"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (IdeaDraft) TableName() string { return "idea_draft" }
