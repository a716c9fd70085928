package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Stevekaplanai/venturevault-backend/internal/http/response"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

type ResearchHandler struct {
	researchService services.ResearchService
}

func NewResearchHandler(researchService services.ResearchService) *ResearchHandler {
	return &ResearchHandler{researchService: researchService}
}

func (rh *ResearchHandler) Research(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	research, source, err := rh.researchService.Research(c.Request.Context(), req.Query)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "research_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"research": research,
		"source":   source,
	})
}

func (rh *ResearchHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := rh.researchService.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "history_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"runs": runs})
}
