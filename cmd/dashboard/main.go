package main

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	adapthttp "dashboard/internal/adapter/http"
	"dashboard/internal/adapter/memory"
	"dashboard/internal/adapter/postgres"
	"dashboard/internal/adapter/storage"
	"dashboard/internal/app"
	"dashboard/internal/config"
	"dashboard/internal/domain"
	"dashboard/internal/events"
	"dashboard/internal/transcribe"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Load()
	ctx := context.Background()

	var (
		users    domain.UserRepository
		sessions domain.SessionRepository
		habits   domain.HabitRepository
		workouts domain.WorkoutRepository
		foodLogs domain.FoodLogRepository
		medit    domain.MeditationRepository
		wealth   domain.WealthRepository
		rels     domain.RelationshipRepository
		library  domain.LibraryRepository
		recs     domain.RecordingRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db open", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck

		users, sessions = db, postgres.NewSessionRepo(db)
		habits, workouts, foodLogs = db, db, db
		medit, wealth, rels, library, recs = db, db, db, db, db
		logger.Info("using postgres backend")
	} else {
		db := memory.New()
		users, sessions = db, memory.NewSessionRepo(db)
		habits, workouts, foodLogs = db, db, db
		medit, wealth, rels, library, recs = db, db, db, db, db
		logger.Warn("DATABASE_URL not set, using in-memory backend; data is lost on restart")
	}

	authSvc := app.NewAuthService(users, sessions, cfg.SessionTTL)
	if err := authSvc.EnsureAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("ensure admin user", zap.Error(err))
	}
	go authSvc.SweepExpiredSessions(ctx, cfg.SessionTTL/4)

	files, err := storage.NewLocal(filepath.Join(cfg.DataDir, "uploads"), "/files")
	if err != nil {
		logger.Fatal("file store", zap.Error(err))
	}

	hub := events.NewHub()
	svcs := adapthttp.Services{
		Auth:          authSvc,
		Habits:        app.NewHabitService(habits, hub),
		Fitness:       app.NewFitnessService(workouts, hub),
		Diet:          app.NewDietService(foodLogs, hub),
		Meditation:    app.NewMeditationService(medit, hub),
		Wealth:        app.NewWealthService(wealth, hub),
		Relationships: app.NewRelationshipService(rels, hub),
		Library:       app.NewLibraryService(library, files, hub),
		Transcribe: app.NewTranscribeService(recs, files,
			transcribe.New(cfg.TranscribeBaseURL, cfg.TranscribeAPIKey, cfg.TranscribeModel), hub),
		Chat: app.NewChatService(),
	}

	oidcCfg := loadOIDC(ctx, cfg, logger)

	h := adapthttp.New(svcs, hub, oidcCfg, logger, cfg.WebDir, files.Dir()).Handler()
	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

func loadOIDC(ctx context.Context, cfg config.Config, logger *zap.Logger) adapthttp.OIDCConfig {
	if cfg.OIDCIssuer == "" {
		return adapthttp.OIDCConfig{}
	}

	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		logger.Warn("oidc provider unavailable, sso disabled", zap.Error(err))
		return adapthttp.OIDCConfig{}
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}
}
