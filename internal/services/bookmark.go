package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/requestdata"
	"github.com/Stevekaplanai/venturevault-backend/internal/types"
)

// ErrUnauthenticated marks bookmark writes attempted without a session.
// Reads never return it: IsSaved for an anonymous caller is simply false.
var ErrUnauthenticated = fmt.Errorf("authentication required")

// ErrUnknownIdea marks a save attempt against an idea id the catalog does
// not carry.
var ErrUnknownIdea = fmt.Errorf("unknown idea")

// BookmarkService tracks which user saved which idea. Saves are idempotent:
// saving an already-saved idea changes nothing, and unsaving an unsaved idea
// is a no-op.
type BookmarkService interface {
	Save(ctx context.Context, ideaID string) error
	Unsave(ctx context.Context, ideaID string) error
	IsSaved(ctx context.Context, ideaID string) (bool, error)
	ListSaved(ctx context.Context) ([]catalog.Idea, error)
}

type bookmarkService struct {
	db            *gorm.DB
	log           *logger.Logger
	savedIdeaRepo repos.SavedIdeaRepo
	store         *catalog.Store
}

func NewBookmarkService(db *gorm.DB, log *logger.Logger, savedIdeaRepo repos.SavedIdeaRepo, store *catalog.Store) BookmarkService {
	return &bookmarkService{
		db:            db,
		log:           log.With("service", "BookmarkService"),
		savedIdeaRepo: savedIdeaRepo,
		store:         store,
	}
}

func (bs *bookmarkService) Save(ctx context.Context, ideaID string) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if _, found := bs.store.GetByID(ideaID); !found {
		return fmt.Errorf("%w: %q", ErrUnknownIdea, ideaID)
	}
	saved := &types.SavedIdea{
		ID:        uuid.New(),
		UserID:    userID,
		IdeaID:    ideaID,
		CreatedAt: time.Now(),
	}
	if err := bs.savedIdeaRepo.Upsert(ctx, nil, saved); err != nil {
		return fmt.Errorf("save idea: %w", err)
	}
	return nil
}

func (bs *bookmarkService) Unsave(ctx context.Context, ideaID string) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if err := bs.savedIdeaRepo.Delete(ctx, nil, userID, ideaID); err != nil {
		return fmt.Errorf("unsave idea: %w", err)
	}
	return nil
}

func (bs *bookmarkService) IsSaved(ctx context.Context, ideaID string) (bool, error) {
	userID, ok := currentUserID(ctx)
	if !ok {
		// Unauthenticated reads get a benign negative, never an error.
		return false, nil
	}
	saved, err := bs.savedIdeaRepo.Exists(ctx, nil, userID, ideaID)
	if err != nil {
		return false, fmt.Errorf("check saved state: %w", err)
	}
	return saved, nil
}

func (bs *bookmarkService) ListSaved(ctx context.Context) ([]catalog.Idea, error) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	rows, err := bs.savedIdeaRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved ideas: %w", err)
	}
	ideas := make([]catalog.Idea, 0, len(rows))
	for _, row := range rows {
		// Bookmarks for ideas retired from the catalog are skipped, not errors.
		if idea, found := bs.store.GetByID(row.IdeaID); found {
			ideas = append(ideas, idea)
		}
	}
	return ideas, nil
}

func currentUserID(ctx context.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return rd.UserID, true
}
