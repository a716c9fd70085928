package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Stevekaplanai/venturevault-backend/internal/http/handlers"
	httpMW "github.com/Stevekaplanai/venturevault-backend/internal/http/middleware"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	CORSOrigins    []string
	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler    *httpH.HealthHandler
	AuthHandler      *httpH.AuthHandler
	IdeaHandler      *httpH.IdeaHandler
	BookmarkHandler  *httpH.BookmarkHandler
	VoteHandler      *httpH.VoteHandler
	ResearchHandler  *httpH.ResearchHandler
	GeneratorHandler *httpH.GeneratorHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "venturevault"
	}
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		// Catalog (public)
		if cfg.IdeaHandler != nil {
			api.GET("/ideas", cfg.IdeaHandler.ListIdeas)
			api.GET("/get-idea", cfg.IdeaHandler.GetIdea)
			api.GET("/categories", cfg.IdeaHandler.ListCategories)
		}

		// Roadmap voting (public, keyed by visitor id)
		if cfg.VoteHandler != nil {
			api.GET("/roadmap-vote", cfg.VoteHandler.GetCounts)
			api.GET("/roadmap-vote/status", cfg.VoteHandler.GetStatus)
			api.POST("/roadmap-vote", cfg.VoteHandler.CastVote)
		}

		// AI research and generation run anonymously too; a present token
		// attaches the run to the caller's history.
		if cfg.AuthMiddleware != nil {
			optional := api.Group("/")
			optional.Use(cfg.AuthMiddleware.OptionalAuth())
			if cfg.ResearchHandler != nil {
				optional.POST("/ai-research", cfg.ResearchHandler.Research)
			}
			if cfg.GeneratorHandler != nil {
				optional.POST("/generate-ideas", cfg.GeneratorHandler.GenerateIdeas)
			}
			if cfg.BookmarkHandler != nil {
				optional.GET("/ideas/:id/saved", cfg.BookmarkHandler.IsSaved)
			}
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Bookmarks
		if cfg.BookmarkHandler != nil {
			protected.PUT("/ideas/:id/save", cfg.BookmarkHandler.Save)
			protected.DELETE("/ideas/:id/save", cfg.BookmarkHandler.Unsave)
			protected.GET("/saved-ideas", cfg.BookmarkHandler.ListSaved)
		}

		// Research history
		if cfg.ResearchHandler != nil {
			protected.GET("/ai-research/history", cfg.ResearchHandler.History)
		}

		// Generated-idea drafts
		if cfg.GeneratorHandler != nil {
			protected.POST("/drafts", cfg.GeneratorHandler.SaveDraft)
			protected.GET("/drafts", cfg.GeneratorHandler.ListDrafts)
			protected.DELETE("/drafts/:id", cfg.GeneratorHandler.DeleteDraft)
		}
	}

	return r
}
