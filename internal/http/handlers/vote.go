package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stevekaplanai/venturevault-backend/internal/http/response"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

type VoteHandler struct {
	voteService services.VoteService
}

func NewVoteHandler(voteService services.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

func (vh *VoteHandler) GetCounts(c *gin.Context) {
	counts, err := vh.voteService.Counts(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "vote_counts_failed", err)
		return
	}
	votes := make(gin.H, len(counts))
	for _, fc := range counts {
		votes[fc.FeatureID] = fc.Votes
	}
	response.RespondOK(c, gin.H{"votes": votes})
}

func (vh *VoteHandler) GetStatus(c *gin.Context) {
	featureID := c.Query("featureId")
	visitorID := c.Query("visitorId")
	voted, err := vh.voteService.HasVoted(c.Request.Context(), featureID, visitorID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	response.RespondOK(c, gin.H{"hasVoted": voted})
}

// CastVote answers a duplicate vote with 409 already_voted so clients can
// reconcile local state without treating it as a failure.
func (vh *VoteHandler) CastVote(c *gin.Context) {
	var req struct {
		FeatureID string `json:"featureId"`
		VisitorID string `json:"visitorId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := vh.voteService.Vote(c.Request.Context(), req.FeatureID, req.VisitorID); err != nil {
		if errors.Is(err, repos.ErrAlreadyVoted) {
			response.RespondError(c, http.StatusConflict, "already_voted", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "vote_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
