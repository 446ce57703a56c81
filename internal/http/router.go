package http

import (
	"net/http"

	"sunlight-admin/internal/analytics"
	"sunlight-admin/internal/auth"
	"sunlight-admin/internal/config"
	"sunlight-admin/internal/http/handler"
	mw "sunlight-admin/internal/http/middleware"
	"sunlight-admin/internal/insights"
	"sunlight-admin/internal/jobs"
	"sunlight-admin/internal/moderation"
	"sunlight-admin/internal/store"
	"sunlight-admin/internal/warehouse"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	st := &store.Store{DB: db}
	insightsSvc := &insights.Service{Store: st}

	var warehouseClient *warehouse.Client
	if cfg.WarehouseURL != "" {
		warehouseClient = warehouse.New(cfg.WarehouseURL, cfg.WarehouseToken)
	}

	policy := analytics.GrowthPolicyLegacy
	if cfg.GrowthZeroBaseline == string(analytics.GrowthPolicyUndefined) {
		policy = analytics.GrowthPolicyUndefined
	}

	usersH := &handler.UsersHandler{Store: st}
	insightsH := &handler.InsightsHandler{
		Svc:         insightsSvc,
		Store:       st,
		Jobs:        &jobs.Repo{DB: db},
		Warehouse:   warehouseClient,
		SnapshotTTL: cfg.SnapshotTTL,
	}
	growthH := &handler.GrowthHandler{Store: st, Policy: policy}
	moderationH := &handler.ModerationHandler{Store: st, Svc: &moderation.Service{DB: db}}
	feedbackH := &handler.FeedbackHandler{Store: st}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/users", usersH.List)
		r.Get("/users/{uid}/retention", usersH.Retention)
		r.Get("/users/{uid}/insights/coping", insightsH.Coping)
		r.Get("/users/{uid}/insights/journaling", insightsH.Journaling)
		r.Get("/users/{uid}/insights/community", insightsH.Community)

		r.Get("/analytics/growth", growthH.Growth)

		r.Get("/moderation/flags", moderationH.Flags)
		r.Post("/moderation/flags/approve", moderationH.Approve)
		r.Post("/moderation/flags/delete", moderationH.Delete)

		r.Get("/feedback", feedbackH.List)
	})

	return r
}
