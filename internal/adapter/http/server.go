package adapthttp

import (
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"dashboard/internal/app"
	"dashboard/internal/events"
)

// OIDCConfig holds the optional single-sign-on configuration. Enabled is
// false when no issuer is configured and the SSO routes answer 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	authSvc       *app.AuthService
	habits        *app.HabitService
	fitness       *app.FitnessService
	diet          *app.DietService
	meditation    *app.MeditationService
	wealth        *app.WealthService
	relationships *app.RelationshipService
	library       *app.LibraryService
	transcribe    *app.TranscribeService
	chat          *app.ChatService

	hub        *events.Hub
	oidcConfig OIDCConfig
	logger     *zap.Logger
	webDir     string
	filesDir   string
}

// Services bundles the application services the server routes to.
type Services struct {
	Auth          *app.AuthService
	Habits        *app.HabitService
	Fitness       *app.FitnessService
	Diet          *app.DietService
	Meditation    *app.MeditationService
	Wealth        *app.WealthService
	Relationships *app.RelationshipService
	Library       *app.LibraryService
	Transcribe    *app.TranscribeService
	Chat          *app.ChatService
}

// New creates a Server wired to the given application services.
func New(svcs Services, hub *events.Hub, oidcCfg OIDCConfig, logger *zap.Logger, webDir, filesDir string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		authSvc:       svcs.Auth,
		habits:        svcs.Habits,
		fitness:       svcs.Fitness,
		diet:          svcs.Diet,
		meditation:    svcs.Meditation,
		wealth:        svcs.Wealth,
		relationships: svcs.Relationships,
		library:       svcs.Library,
		transcribe:    svcs.Transcribe,
		chat:          svcs.Chat,
		hub:           hub,
		oidcConfig:    oidcCfg,
		logger:        logger,
		webDir:        webDir,
		filesDir:      filesDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api", func(api chi.Router) {
		api.Use(withNoCache)
		api.Use(s.resolveUser)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		api.Post("/auth/login", s.handleLogin)
		api.Post("/auth/logout", s.handleLogout)
		api.Get("/auth/session", s.handleSession)
		api.Get("/auth/config", s.handleConfig)
		api.Get("/auth/sso/login", s.handleSSOLogin)
		api.Get("/auth/sso/callback", s.handleSSOCallback)

		// Reads are open to everyone on the network.
		api.Get("/habits", s.handleHabitList)
		api.Get("/workouts", s.handleWorkoutList)
		api.Get("/workouts/progress", s.handleWorkoutProgress)
		api.Get("/diet/recent", s.handleDietRecent)
		api.Get("/diet/{day}", s.handleDietDay)
		api.Get("/wealth/entries", s.handleWealthEntries)
		api.Get("/wealth/snapshots", s.handleWealthSnapshots)
		api.Get("/relationships", s.handleRelationshipList)
		api.Get("/library/links", s.handleLinkPaperList)
		api.Get("/library/categories", s.handleCategoryList)
		api.Get("/overview", s.handleOverview)
		api.Get("/events", s.handleEvents)

		// Everything that writes, and the per-user collections, need a
		// signed-in user.
		api.Group(func(priv chi.Router) {
			priv.Use(s.requireAuth)

			priv.Post("/habits", s.handleHabitAdd)
			priv.Post("/habits/{id}/restart", s.handleHabitRestart)
			priv.Delete("/habits/{id}", s.handleHabitDelete)

			priv.Post("/workouts", s.handleWorkoutFinish)

			priv.Post("/diet/{day}/foods", s.handleDietAddFood)
			priv.Delete("/diet/{day}/foods/{foodID}", s.handleDietRemoveFood)

			priv.Get("/meditation/sessions", s.handleMeditationList)
			priv.Post("/meditation/sessions", s.handleMeditationAdd)

			priv.Post("/wealth/entries", s.handleWealthAddEntry)
			priv.Post("/wealth/import", s.handleWealthImport)

			priv.Post("/relationships", s.handleRelationshipAdd)
			priv.Post("/relationships/{id}/touch", s.handleRelationshipTouch)
			priv.Delete("/relationships/{id}", s.handleRelationshipDelete)

			priv.Post("/library/links", s.handleLinkPaperAdd)
			priv.Delete("/library/links/{id}", s.handleLinkPaperDelete)
			priv.Post("/library/categories", s.handleCategoryAdd)
			priv.Delete("/library/categories/{id}", s.handleCategoryDelete)

			priv.Get("/recordings", s.handleRecordingList)
			priv.Post("/recordings", s.handleRecordingCreate)

			priv.Post("/chat", s.handleChat)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(s.filesDir))))
	r.NotFound(spaFromDisk(s.webDir).ServeHTTP)

	return r
}
