package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Stevekaplanai/venturevault-backend/internal/http/response"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

type GeneratorHandler struct {
	generatorService services.GeneratorService
}

func NewGeneratorHandler(generatorService services.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{generatorService: generatorService}
}

func (gh *GeneratorHandler) GenerateIdeas(c *gin.Context) {
	var req services.GenerateIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ideas, marketContext, source, err := gh.generatorService.Generate(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "generation_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":       true,
		"ideas":         ideas,
		"marketContext": marketContext,
		"source":        source,
	})
}

func (gh *GeneratorHandler) SaveDraft(c *gin.Context) {
	var req struct {
		Idea   services.GeneratedIdea `json:"idea"`
		Source string                 `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	source := services.AISource(req.Source)
	if source != services.AISourceLive {
		source = services.AISourceFallback
	}
	draft, err := gh.generatorService.SaveDraft(c.Request.Context(), req.Idea, source)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "draft_save_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"draft": draft})
}

func (gh *GeneratorHandler) ListDrafts(c *gin.Context) {
	drafts, err := gh.generatorService.ListDrafts(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "draft_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"drafts": drafts})
}

func (gh *GeneratorHandler) DeleteDraft(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := gh.generatorService.DeleteDraft(c.Request.Context(), draftID); err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "draft_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
