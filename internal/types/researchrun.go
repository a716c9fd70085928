package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResearchRun is one persisted market-research request and its payload, so
// signed-in users can revisit past research. Anonymous runs have a nil
// UserID and are kept only for call accounting.
type ResearchRun struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Query   string         `gorm:"not null;column:query" json:"query"`
	Source  string         `gorm:"not null;column:source" json:"source"` // live | fallback
	Payload datatypes.JSON `gorm:"column:payload" json:"payload"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ResearchRun) TableName() string { return "research_run" }
