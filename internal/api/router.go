package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/jobzen/dashboard/docs"
	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/handler"
	"github.com/jobzen/dashboard/internal/api/middleware"
	"github.com/jobzen/dashboard/internal/api/view"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
	"github.com/jobzen/dashboard/internal/infrastructure/http/handlers"
)

// Deps are the services and stores the router wires into handlers.
type Deps struct {
	Log      zerolog.Logger
	Jar      cookie.Jar
	Sessions ports.SessionStore
	Toasts   ports.ToastQueue

	Auth       ports.AuthService
	Profiles   ports.ProfileService
	Managed    ports.ManagedUserService
	Themes     ports.ThemeService
	Dashboards ports.DashboardService

	// Readiness lists the dependency checks behind /health/ready.
	Readiness map[string]handlers.Pinger

	LoginRate  rate.Limit
	LoginBurst int

	// Registry receives the HTTP metrics; nil uses the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	// Client addresses come from the connection; forwarded headers are not trusted.
	e.IPExtractor = echo.ExtractIPDirect()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Jar, d.Sessions)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "dashboard",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(middleware.Guard())
	e.Use(middleware.LoadSession(d.Sessions, d.Jar, d.Log))

	requireSession := middleware.RequireSession()
	loginLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      d.LoginRate,
			Burst:     d.LoginBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts. Please wait a moment and try again.")
		},
	})

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Toasts, d.Jar, d.Log)
	profileHandler := handler.NewProfileHandler(d.Profiles, d.Jar)
	managedHandler := handler.NewManagedUserHandler(d.Managed)
	themeHandler := handler.NewThemeHandler(d.Themes, d.Jar)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboards, d.Toasts, d.Log)
	pageHandler := handler.NewPageHandler(d.Themes, d.Dashboards)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login, loginLimiter)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.POST("/api/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/api/auth/reset-password", authHandler.ResetPassword)
	e.GET("/auth/callback", authHandler.OAuthCallback)

	// --- User routes ---
	e.GET("/api/users/me", profileHandler.Me, requireSession)
	e.PATCH("/api/users/profile", profileHandler.UpdateProfile, requireSession)
	e.PATCH("/api/users/complete-profile", authHandler.CompleteProfile, requireSession)

	managed := e.Group("/api/users/managed", requireSession, middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin))
	managed.GET("", managedHandler.List)
	managed.POST("", managedHandler.Create)
	managed.DELETE("/:id", managedHandler.Delete)

	// --- Dashboard, toasts and theme ---
	e.GET("/api/dashboard", dashboardHandler.Config, requireSession)
	e.GET("/api/toasts", dashboardHandler.Toasts)
	e.GET("/api/themes", themeHandler.List)
	e.GET("/api/theme", themeHandler.Get)
	e.PUT("/api/theme", themeHandler.Select)
	e.GET("/theme.css", themeHandler.StyleSheet)

	// --- Pages ---
	e.GET("/", pageHandler.Public("home", "Jobzen"))
	e.GET("/login", pageHandler.Public("login", "Sign in"))
	e.GET("/register", pageHandler.Public("register", "Sign up"))
	e.GET("/forgot-password", pageHandler.Public("forgot_password", "Forgot password"))
	e.GET("/reset-password", pageHandler.Public("reset_password", "Reset password"))
	e.GET("/terms", pageHandler.Public("terms", "Terms of Service"))
	e.GET("/privacy", pageHandler.Public("privacy", "Privacy Policy"))
	e.GET("/auth/complete-profile", pageHandler.CompleteProfile)
	e.GET("/profile", pageHandler.Profile)
	e.GET("/:role/dashboard", pageHandler.Dashboard)
	e.GET("/:role/:section", pageHandler.Section)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
