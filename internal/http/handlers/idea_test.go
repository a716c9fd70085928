package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

func ideaRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := services.NewIdeaService(logger.NewNop(), catalog.NewStore(nil), nil, nil)
	h := NewIdeaHandler(svc)

	r := gin.New()
	r.GET("/api/ideas", h.ListIdeas)
	r.GET("/api/get-idea", h.GetIdea)
	r.GET("/api/categories", h.ListCategories)
	return r
}

func TestListIdeas(t *testing.T) {
	r := ideaRouter(t)

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "default browse", url: "/api/ideas", wantStatus: http.StatusOK},
		{name: "category filter", url: "/api/ideas?category=SaaS", wantStatus: http.StatusOK},
		{name: "search and sort", url: "/api/ideas?q=ai&sort=trending-first", wantStatus: http.StatusOK},
		{name: "recent sort", url: "/api/ideas?sort=recent", wantStatus: http.StatusOK},
		{name: "unknown sort", url: "/api/ideas?sort=alphabetical", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status got=%d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestListIdeasCategoryFilter(t *testing.T) {
	r := ideaRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ideas?category=FinTech", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d, want 200", rec.Code)
	}
	var body struct {
		Ideas  []catalog.Idea `json:"ideas"`
		Source string         `json:"source"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Source != "static" {
		t.Fatalf("source got=%q, want static", body.Source)
	}
	if len(body.Ideas) == 0 {
		t.Fatalf("no FinTech ideas returned")
	}
	for _, idea := range body.Ideas {
		if idea.Category != "FinTech" {
			t.Fatalf("idea %q has category %q, want FinTech", idea.ID, idea.Category)
		}
	}
}

func TestGetIdea(t *testing.T) {
	r := ideaRouter(t)
	id := catalog.Dataset()[0].ID

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-idea?id="+id, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d, want 200", rec.Code)
	}
	var body struct {
		Idea         catalog.Idea   `json:"idea"`
		RelatedIdeas []catalog.Idea `json:"relatedIdeas"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Idea.ID != id {
		t.Fatalf("idea id got=%q, want %q", body.Idea.ID, id)
	}
	if len(body.RelatedIdeas) > 3 {
		t.Fatalf("related count got=%d, want <= 3", len(body.RelatedIdeas))
	}
}

func TestGetIdeaErrors(t *testing.T) {
	r := ideaRouter(t)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown id", url: "/api/get-idea?id=nope", wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "missing id", url: "/api/get-idea", wantStatus: http.StatusBadRequest, wantCode: "invalid_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status got=%d, want %d", rec.Code, tt.wantStatus)
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Fatalf("error code got=%q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	r := ideaRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d, want 200", rec.Code)
	}
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Categories) == 0 || body.Categories[0] != catalog.CategorySaaS {
		t.Fatalf("categories got=%v, want list starting with %q", body.Categories, catalog.CategorySaaS)
	}
}
