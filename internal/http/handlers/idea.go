package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	"github.com/Stevekaplanai/venturevault-backend/internal/http/response"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

type IdeaHandler struct {
	ideaService services.IdeaService
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// ListIdeas serves the browse query: optional category, free-text q and sort
// params, applied as search then category filter then sort.
func (ih *IdeaHandler) ListIdeas(c *gin.Context) {
	category := c.DefaultQuery("category", catalog.CategoryAll)
	query := c.Query("q")

	sortMode := catalog.SortMode(c.DefaultQuery("sort", string(catalog.SortByScore)))
	switch sortMode {
	case catalog.SortByScore, catalog.SortTrending, catalog.SortByRecent:
	default:
		response.RespondError(c, http.StatusBadRequest, "invalid_request",
			fmt.Errorf("unknown sort %q", sortMode))
		return
	}

	ideas, source, err := ih.ideaService.Browse(c.Request.Context(), query, category, sortMode)
	if err != nil {
		response.RespondError(c, http.StatusBadGateway, "upstream_unavailable", err)
		return
	}
	response.RespondOK(c, gin.H{
		"ideas":  ideas,
		"source": source,
	})
}

func (ih *IdeaHandler) GetIdea(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("id is required"))
		return
	}
	idea, related, source, ok := ih.ideaService.GetIdea(c.Request.Context(), id)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("no idea with id %q", id))
		return
	}
	response.RespondOK(c, gin.H{
		"idea":         idea,
		"relatedIdeas": related,
		"source":       source,
	})
}

func (ih *IdeaHandler) ListCategories(c *gin.Context) {
	response.RespondOK(c, gin.H{"categories": ih.ideaService.Categories()})
}
