package types

import (
	"time"

	"github.com/google/uuid"
)

// RoadmapVote records one visitor's vote for one roadmap feature. Visitors
// are anonymous device-generated UUIDs, not accounts. The composite unique
// index backs the distinguishable "already voted" condition.
type RoadmapVote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FeatureID string    `gorm:"not null;uniqueIndex:idx_roadmap_vote_feature_visitor;column:feature_id" json:"feature_id"`
	VisitorID string    `gorm:"not null;uniqueIndex:idx_roadmap_vote_feature_visitor;column:visitor_id" json:"visitor_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (RoadmapVote) TableName() string { return "roadmap_vote" }
