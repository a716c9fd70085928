package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

type fakeVoteRepo struct {
	votes map[string]map[string]bool // featureID -> visitorID -> voted
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: map[string]map[string]bool{}}
}

func (f *fakeVoteRepo) Create(_ context.Context, _ *gorm.DB, vote *types.RoadmapVote) error {
	if f.votes[vote.FeatureID][vote.VisitorID] {
		return repos.ErrAlreadyVoted
	}
	if f.votes[vote.FeatureID] == nil {
		f.votes[vote.FeatureID] = map[string]bool{}
	}
	f.votes[vote.FeatureID][vote.VisitorID] = true
	return nil
}

func (f *fakeVoteRepo) CountByFeature(_ context.Context, _ *gorm.DB) ([]repos.FeatureCount, error) {
	var out []repos.FeatureCount
	for featureID, visitors := range f.votes {
		out = append(out, repos.FeatureCount{FeatureID: featureID, Votes: int64(len(visitors))})
	}
	return out, nil
}

func (f *fakeVoteRepo) HasVoted(_ context.Context, _ *gorm.DB, featureID, visitorID string) (bool, error) {
	return f.votes[featureID][visitorID], nil
}

func TestVoteDuplicateIsDistinct(t *testing.T) {
	svc := NewVoteService(nil, logger.NewNop(), newFakeVoteRepo(), nil)
	ctx := context.Background()

	if err := svc.Vote(ctx, "dark-mode", "visitor-1"); err != nil {
		t.Fatalf("first vote: got=%v, want nil", err)
	}
	err := svc.Vote(ctx, "dark-mode", "visitor-1")
	if !errors.Is(err, repos.ErrAlreadyVoted) {
		t.Fatalf("duplicate vote: got=%v, want ErrAlreadyVoted", err)
	}
	// A different visitor still counts.
	if err := svc.Vote(ctx, "dark-mode", "visitor-2"); err != nil {
		t.Fatalf("second visitor vote: got=%v, want nil", err)
	}

	counts, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(counts) != 1 || counts[0].Votes != 2 {
		t.Fatalf("counts got=%+v, want one feature with 2 votes", counts)
	}
}

func TestHasVotedReflectsParticipation(t *testing.T) {
	svc := NewVoteService(nil, logger.NewNop(), newFakeVoteRepo(), nil)
	ctx := context.Background()

	voted, err := svc.HasVoted(ctx, "dark-mode", "visitor-1")
	if err != nil || voted {
		t.Fatalf("before voting: got=(%v, %v), want (false, nil)", voted, err)
	}
	if err := svc.Vote(ctx, "dark-mode", "visitor-1"); err != nil {
		t.Fatalf("Vote: %v", err)
	}
	voted, err = svc.HasVoted(ctx, "dark-mode", "visitor-1")
	if err != nil || !voted {
		t.Fatalf("after voting: got=(%v, %v), want (true, nil)", voted, err)
	}
	voted, _ = svc.HasVoted(ctx, "dark-mode", "visitor-2")
	if voted {
		t.Fatalf("other visitor reported as having voted")
	}
	if _, err := svc.HasVoted(ctx, "", "visitor-1"); err == nil {
		t.Fatalf("got nil error for missing featureId, want validation failure")
	}
}

func TestVoteValidation(t *testing.T) {
	svc := NewVoteService(nil, logger.NewNop(), newFakeVoteRepo(), nil)
	tests := []struct {
		name      string
		featureID string
		visitorID string
	}{
		{name: "missing feature", featureID: "", visitorID: "v"},
		{name: "missing visitor", featureID: "f", visitorID: ""},
		{name: "whitespace only", featureID: "  ", visitorID: "v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Vote(context.Background(), tt.featureID, tt.visitorID); err == nil {
				t.Fatalf("got nil error, want validation failure")
			}
		})
	}
}
