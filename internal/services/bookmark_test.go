package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/requestdata"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

type fakeSavedIdeaRepo struct {
	rows map[string]map[string]bool // userID -> ideaID -> saved
}

func newFakeSavedIdeaRepo() *fakeSavedIdeaRepo {
	return &fakeSavedIdeaRepo{rows: map[string]map[string]bool{}}
}

func (f *fakeSavedIdeaRepo) Upsert(_ context.Context, _ *gorm.DB, saved *types.SavedIdea) error {
	key := saved.UserID.String()
	if f.rows[key] == nil {
		f.rows[key] = map[string]bool{}
	}
	f.rows[key][saved.IdeaID] = true
	return nil
}

func (f *fakeSavedIdeaRepo) Delete(_ context.Context, _ *gorm.DB, userID uuid.UUID, ideaID string) error {
	delete(f.rows[userID.String()], ideaID)
	return nil
}

func (f *fakeSavedIdeaRepo) Exists(_ context.Context, _ *gorm.DB, userID uuid.UUID, ideaID string) (bool, error) {
	return f.rows[userID.String()][ideaID], nil
}

func (f *fakeSavedIdeaRepo) GetByUserID(_ context.Context, _ *gorm.DB, userID uuid.UUID) ([]*types.SavedIdea, error) {
	var out []*types.SavedIdea
	for ideaID := range f.rows[userID.String()] {
		out = append(out, &types.SavedIdea{UserID: userID, IdeaID: ideaID})
	}
	return out, nil
}

func bookmarkFixture(t *testing.T) (BookmarkService, *fakeSavedIdeaRepo, context.Context) {
	t.Helper()
	store := catalog.NewStore(nil)
	repo := newFakeSavedIdeaRepo()
	svc := NewBookmarkService(nil, logger.NewNop(), repo, store)
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: uuid.New()})
	return svc, repo, ctx
}

func TestSaveIsIdempotent(t *testing.T) {
	svc, _, ctx := bookmarkFixture(t)
	id := catalog.Dataset()[0].ID

	if err := svc.Save(ctx, id); err != nil {
		t.Fatalf("first save: got=%v, want nil", err)
	}
	if err := svc.Save(ctx, id); err != nil {
		t.Fatalf("second save: got=%v, want nil", err)
	}
	saved, err := svc.IsSaved(ctx, id)
	if err != nil || !saved {
		t.Fatalf("IsSaved got=(%v, %v), want (true, nil)", saved, err)
	}
	ideas, err := svc.ListSaved(ctx)
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(ideas) != 1 {
		t.Fatalf("saved count got=%d, want 1", len(ideas))
	}
}

func TestUnsaveRestoresPreSaveState(t *testing.T) {
	svc, _, ctx := bookmarkFixture(t)
	id := catalog.Dataset()[0].ID

	if err := svc.Save(ctx, id); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Unsave(ctx, id); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	saved, err := svc.IsSaved(ctx, id)
	if err != nil || saved {
		t.Fatalf("IsSaved got=(%v, %v), want (false, nil)", saved, err)
	}
	// Unsaving again is a no-op, not an error.
	if err := svc.Unsave(ctx, id); err != nil {
		t.Fatalf("repeat unsave: got=%v, want nil", err)
	}
}

func TestBookmarkWithoutSession(t *testing.T) {
	svc, _, _ := bookmarkFixture(t)
	anon := context.Background()
	id := catalog.Dataset()[0].ID

	if err := svc.Save(anon, id); err != ErrUnauthenticated {
		t.Fatalf("anonymous save: got=%v, want ErrUnauthenticated", err)
	}
	// Reads degrade to a benign negative instead of failing.
	saved, err := svc.IsSaved(anon, id)
	if err != nil {
		t.Fatalf("anonymous IsSaved: got err=%v, want nil", err)
	}
	if saved {
		t.Fatalf("anonymous IsSaved got=true, want false")
	}
}

func TestSaveUnknownIdea(t *testing.T) {
	svc, _, ctx := bookmarkFixture(t)
	err := svc.Save(ctx, "no-such-idea")
	if err == nil {
		t.Fatalf("save unknown idea: got nil error")
	}
}
