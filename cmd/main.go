package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	openaic "github.com/Stevekaplanai/venturevault-backend/internal/clients/openai"
	redisc "github.com/Stevekaplanai/venturevault-backend/internal/clients/redis"
	"github.com/Stevekaplanai/venturevault-backend/internal/clients/upstream"
	"github.com/Stevekaplanai/venturevault-backend/internal/config"
	"github.com/Stevekaplanai/venturevault-backend/internal/db"
	httpx "github.com/Stevekaplanai/venturevault-backend/internal/http"
	httpH "github.com/Stevekaplanai/venturevault-backend/internal/http/handlers"
	httpMW "github.com/Stevekaplanai/venturevault-backend/internal/http/middleware"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/observability"
	"github.com/Stevekaplanai/venturevault-backend/internal/repos"
	"github.com/Stevekaplanai/venturevault-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Config load failed", "error", err)
	}

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "venturevault",
		Environment: cfg.Env,
	})

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Auto migration failed", "error", err)
	}
	gdb := dbService.DB()

	// Catalog
	store := catalog.NewStore(nil)
	log.Info("Catalog loaded", "ideas", store.Len())

	// Repos
	userRepo := repos.NewUserRepo(gdb, log)
	userTokenRepo := repos.NewUserTokenRepo(gdb, log)
	savedIdeaRepo := repos.NewSavedIdeaRepo(gdb, log)
	roadmapVoteRepo := repos.NewRoadmapVoteRepo(gdb, log)
	researchRunRepo := repos.NewResearchRunRepo(gdb, log)
	ideaDraftRepo := repos.NewIdeaDraftRepo(gdb, log)

	// Optional clients. Each degrades cleanly: no redis means no caching, no
	// API key means the mock generators, no upstream URL means static data.
	var cache redisc.Cache
	if c, err := redisc.NewCache(log); err != nil {
		log.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		cache = c
		defer cache.Close()
	}

	var aiBackend openaic.Client
	if oc, err := openaic.NewClient(log); err != nil {
		log.Warn("Model API unavailable, AI endpoints use the fallback generator", "error", err)
	} else {
		aiBackend = oc
	}

	var upstreamClient upstream.Client
	if uc, err := upstream.New(log, cfg.Upstream.BaseURL); err != nil {
		log.Info("No upstream idea service configured, serving the static dataset")
	} else {
		upstreamClient = uc
	}

	// Services
	authService := services.NewAuthService(
		gdb, log, userRepo, userTokenRepo,
		cfg.Auth.JWTSecretKey,
		time.Duration(cfg.Auth.AccessTokenTTLSeconds)*time.Second,
		time.Duration(cfg.Auth.RefreshTokenTTLSeconds)*time.Second,
	)
	ideaService := services.NewIdeaService(log, store, upstreamClient, cache)
	bookmarkService := services.NewBookmarkService(gdb, log, savedIdeaRepo, store)
	voteService := services.NewVoteService(gdb, log, roadmapVoteRepo, cache)
	aiClient := services.NewAIClient(log, aiBackend)
	researchService := services.NewResearchService(gdb, log, aiClient, researchRunRepo)
	generatorService := services.NewGeneratorService(gdb, log, aiClient, ideaDraftRepo)

	// HTTP
	server := httpx.NewServer(httpx.RouterConfig{
		Log:              log,
		ServiceName:      "venturevault",
		CORSOrigins:      cfg.HTTP.CORSAllowOrigins,
		AuthMiddleware:   httpMW.NewAuthMiddleware(log, authService),
		HealthHandler:    httpH.NewHealthHandler(),
		AuthHandler:      httpH.NewAuthHandler(authService),
		IdeaHandler:      httpH.NewIdeaHandler(ideaService),
		BookmarkHandler:  httpH.NewBookmarkHandler(bookmarkService),
		VoteHandler:      httpH.NewVoteHandler(voteService),
		ResearchHandler:  httpH.NewResearchHandler(researchService),
		GeneratorHandler: httpH.NewGeneratorHandler(generatorService),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server starting", "addr", cfg.HTTP.Addr)
		return server.Run(cfg.HTTP.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.HTTP.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if otelShutdown != nil {
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Warn("Tracing shutdown failed", "error", err)
			}
		}
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server exited", "error", err)
	}
	log.Info("Server stopped")
}
