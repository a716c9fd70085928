package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Stevekaplanai/venturevault-backend/internal/http/response"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

type BookmarkHandler struct {
	bookmarkService services.BookmarkService
}

func NewBookmarkHandler(bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (bh *BookmarkHandler) Save(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("idea id is required"))
		return
	}
	if err := bh.bookmarkService.Save(c.Request.Context(), id); err != nil {
		bh.respondSaveError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"saved": true})
}

func (bh *BookmarkHandler) Unsave(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("idea id is required"))
		return
	}
	if err := bh.bookmarkService.Unsave(c.Request.Context(), id); err != nil {
		bh.respondSaveError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"saved": false})
}

// IsSaved runs on an optional-auth route: an anonymous caller gets a plain
// false, never an auth error.
func (bh *BookmarkHandler) IsSaved(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("idea id is required"))
		return
	}
	saved, err := bh.bookmarkService.IsSaved(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "bookmark_lookup_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"isSaved": saved})
}

func (bh *BookmarkHandler) ListSaved(c *gin.Context) {
	ideas, err := bh.bookmarkService.ListSaved(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "bookmark_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ideas": ideas})
}

func (bh *BookmarkHandler) respondSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, services.ErrUnknownIdea):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "bookmark_failed", err)
	}
}
