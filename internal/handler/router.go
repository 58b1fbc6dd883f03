package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware

	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Property *api.PropertyHandler
	Booking  *api.BookingHandler
	Payment  *api.PaymentHandler
	Review   *api.ReviewHandler
	Message  *api.MessageHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.RateLimit.Enabled {
		engine.Use(middleware.NewRateLimiter(cfg.RateLimit).Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware
	requireAuth := authMw.RequireAuth()

	engine.GET("/health", p.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: p.Auth.UpdateMe},
			})
		}

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: p.User.Get},
		})

		properties := apiGroup.Group("/properties")
		{
			optional := authMw.OptionalAuth()
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Property.List, Mw: []gin.HandlerFunc{optional}},
				{Method: http.MethodPost, Path: "", Handler: p.Property.Create, Mw: []gin.HandlerFunc{requireAuth, authMw.RequireRoleAtLeast(user.RoleHost)}},
				{Method: http.MethodGet, Path: "/mine", Handler: p.Property.Mine, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Property.Get, Mw: []gin.HandlerFunc{optional}},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Property.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Property.Deactivate, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: p.Review.ListByProperty},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: p.Review.Rating},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: p.Booking.ListMine},
				{Method: http.MethodGet, Path: "/host", Handler: p.Booking.ListForHost},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Booking.Cancel},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Payment.Capture},
				{Method: http.MethodGet, Path: "", Handler: p.Payment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Payment.Get},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Review.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Review.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Review.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(requireAuth)
		{
			addRoutes(messages, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Message.Send},
				{Method: http.MethodGet, Path: "", Handler: p.Message.ListMine},
				{Method: http.MethodGet, Path: "/conversation/:userId", Handler: p.Message.Conversation},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Message.Get},
				{Method: http.MethodPost, Path: "/:id/read", Handler: p.Message.MarkRead},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
