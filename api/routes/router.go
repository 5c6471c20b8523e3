package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Priyanshpaila/Recruitment-backend/api/controllers"
	"github.com/Priyanshpaila/Recruitment-backend/api/middleware"
	"github.com/Priyanshpaila/Recruitment-backend/internal/application"
	"github.com/Priyanshpaila/Recruitment-backend/internal/auth"
	"github.com/Priyanshpaila/Recruitment-backend/internal/idcard"
	"github.com/Priyanshpaila/Recruitment-backend/internal/users"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/auth/session"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/metrics"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/redis"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *db.Client
	Redis       *redis.Client
	Metrics     *metrics.HTTPMetrics
	Sessions    *session.Store
	Users       *users.Repository
	AuthSvc     auth.Service
	UsersSvc    users.Service
	IDCardSvc   idcard.Service
	AppFormsSvc application.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	var dbPing, redisPing db.Pinger
	if d.DB != nil {
		dbPing = d.DB
	}
	if d.Redis != nil {
		redisPing = d.Redis
	}
	r.Get("/health", controllers.Health(cfg, dbPing, redisPing))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginPhoneLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterPhoneLimit,
	)

	authGate := middleware.Auth(d.Sessions, logg)
	adminGate := middleware.RequireAdmin(d.Users, logg)

	// A missing Redis client disables the limiters entirely instead of
	// handing the middleware a typed nil.
	passthrough := func(next http.Handler) http.Handler { return next }
	globalLimit := passthrough
	authLimit := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		return passthrough
	}
	if d.Redis != nil {
		globalLimit = middleware.RateLimit(cfg.RateLimit, d.Redis, logg)
		authLimit = func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
			return middleware.AuthRateLimit(policy, d.Redis, logg)
		}
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(globalLimit)

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimit(registerPolicy)).
				Post("/register", controllers.AuthRegister(d.AuthSvc, logg))
			r.With(authLimit(loginPolicy)).
				Post("/login", controllers.AuthLogin(d.AuthSvc, logg))
			r.With(authGate).Post("/logout", controllers.AuthLogout(d.AuthSvc, logg))
			r.With(authGate).Post("/change-password", controllers.AuthChangePassword(d.AuthSvc, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authGate)
			r.Get("/me", controllers.UsersMe(d.UsersSvc, logg))
			r.Post("/me/photo", controllers.UsersUploadPhoto(d.UsersSvc, cfg.Upload, logg))
			r.Get("/photo/{fileId}", controllers.UsersStreamPhoto(d.UsersSvc, logg))
			r.With(adminGate).Post("/create", controllers.UsersCreate(d.UsersSvc, logg))
			r.With(adminGate).Get("/listusers", controllers.UsersList(d.UsersSvc, logg))
		})

		r.Route("/idcard", func(r chi.Router) {
			r.Use(authGate)
			r.Get("/me", controllers.IDCardGet(d.IDCardSvc, logg))
			r.Post("/me", controllers.IDCardUpsert(d.IDCardSvc, logg))
			r.Post("/me/signature", controllers.IDCardUploadSignature(d.IDCardSvc, cfg.Upload, logg))
			r.Get("/signature/{fileId}", controllers.IDCardStreamSignature(d.IDCardSvc, logg))
		})

		// The doubled /application/application/... segments mirror the paths
		// the frontend already calls.
		r.Route("/application", func(r chi.Router) {
			r.Use(authGate)
			r.Post("/submit", controllers.ApplicationSubmit(d.AppFormsSvc, logg))
			r.With(adminGate).Get("/{userId}", controllers.ApplicationView(d.AppFormsSvc, logg))
			r.With(adminGate).Post("/application/update/{userId}", controllers.ApplicationUpdate(d.AppFormsSvc, logg))
			r.With(adminGate).Get("/application/data/{userId}", controllers.ApplicationView(d.AppFormsSvc, logg))
		})
	})

	return r
}
