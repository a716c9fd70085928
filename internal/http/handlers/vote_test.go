package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
)

type stubVoteService struct {
	voted map[string]bool // featureID|visitorID
}

func (s *stubVoteService) Vote(_ context.Context, featureID, visitorID string) error {
	key := featureID + "|" + visitorID
	if s.voted[key] {
		return repos.ErrAlreadyVoted
	}
	if s.voted == nil {
		s.voted = map[string]bool{}
	}
	s.voted[key] = true
	return nil
}

func (s *stubVoteService) Counts(_ context.Context) ([]repos.FeatureCount, error) {
	return []repos.FeatureCount{{FeatureID: "dark-mode", Votes: 4}}, nil
}

func (s *stubVoteService) HasVoted(_ context.Context, featureID, visitorID string) (bool, error) {
	if featureID == "" || visitorID == "" {
		return false, fmt.Errorf("featureId and visitorId are required")
	}
	return s.voted[featureID+"|"+visitorID], nil
}

func voteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVoteHandler(&stubVoteService{})
	r := gin.New()
	r.GET("/api/roadmap-vote", h.GetCounts)
	r.GET("/api/roadmap-vote/status", h.GetStatus)
	r.POST("/api/roadmap-vote", h.CastVote)
	return r
}

func TestCastVote(t *testing.T) {
	r := voteRouter()
	payload := `{"featureId":"dark-mode","visitorId":"visitor-1"}`

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/roadmap-vote", strings.NewReader(payload)))
	if rec.Code != http.StatusOK {
		t.Fatalf("first vote status got=%d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	// The duplicate comes back as the distinct already_voted condition.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/roadmap-vote", strings.NewReader(payload)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate vote status got=%d, want 409", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "already_voted" {
		t.Fatalf("error code got=%q, want already_voted", body.Error.Code)
	}
}

func TestGetVoteStatus(t *testing.T) {
	r := voteRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roadmap-vote/status?featureId=dark-mode&visitorId=visitor-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d, want 200", rec.Code)
	}
	var body struct {
		HasVoted bool `json:"hasVoted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.HasVoted {
		t.Fatalf("hasVoted got=true before any vote")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/roadmap-vote", strings.NewReader(`{"featureId":"dark-mode","visitorId":"visitor-1"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("vote status got=%d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roadmap-vote/status?featureId=dark-mode&visitorId=visitor-1", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.HasVoted {
		t.Fatalf("hasVoted got=false after voting")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roadmap-vote/status?featureId=dark-mode", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing visitorId status got=%d, want 400", rec.Code)
	}
}

func TestGetVoteCounts(t *testing.T) {
	r := voteRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roadmap-vote", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d, want 200", rec.Code)
	}
	var body struct {
		Votes map[string]int64 `json:"votes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Votes["dark-mode"] != 4 {
		t.Fatalf("votes got=%v, want dark-mode=4", body.Votes)
	}
}
