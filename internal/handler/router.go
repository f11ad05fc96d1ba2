package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"student-travels/internal/domain/user"
	"student-travels/internal/handler/api"
	"student-travels/internal/handler/middleware"
	"student-travels/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for route registration.
type Handlers struct {
	Auth      *api.AuthHandler
	Category  *api.CategoryHandler
	Offer     *api.OfferHandler
	Booking   *api.BookingHandler
	Review    *api.ReviewHandler
	Favourite *api.FavouriteHandler
	Message   *api.MessageHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMw *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{limiter.Login()}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Login()}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateProfile},
			})
		}

		public := apiGroup.Group("")
		public.Use(authMw.OptionalAuth())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
			{Method: http.MethodGet, Path: "/offers", Handler: h.Offer.Search},
			{Method: http.MethodGet, Path: "/offers/featured", Handler: h.Offer.Featured},
			{Method: http.MethodGet, Path: "/offers/:id", Handler: h.Offer.Get},
			{Method: http.MethodGet, Path: "/offers/:id/reviews", Handler: h.Review.ListByOffer},
		})

		private := apiGroup.Group("")
		private.Use(authMw.RequireAuth())
		staffOnly := authMw.RequireRole(user.RoleModerator, user.RoleAdmin)
		addRoutes(private, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Get},

			{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Create},

			{Method: http.MethodPost, Path: "/offers", Handler: h.Offer.Create},
			{Method: http.MethodGet, Path: "/offers/mine", Handler: h.Offer.Mine},
			{Method: http.MethodGet, Path: "/offers/pending", Handler: h.Offer.Pending, Mw: []gin.HandlerFunc{staffOnly}},
			{Method: http.MethodPatch, Path: "/offers/:id", Handler: h.Offer.Edit},
			{Method: http.MethodPut, Path: "/offers/:id/status", Handler: h.Offer.UpdateStatus, Mw: []gin.HandlerFunc{staffOnly}},
			{Method: http.MethodPut, Path: "/offers/:id/featured", Handler: h.Offer.SetFeatured, Mw: []gin.HandlerFunc{staffOnly}},

			{Method: http.MethodPost, Path: "/offers/:id/favourite/toggle", Handler: h.Favourite.Toggle},
			{Method: http.MethodPut, Path: "/offers/:id/favourite", Handler: h.Favourite.Add},
			{Method: http.MethodDelete, Path: "/offers/:id/favourite", Handler: h.Favourite.Remove},
			{Method: http.MethodGet, Path: "/favourites", Handler: h.Favourite.List},

			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{limiter.Booking()}},
			{Method: http.MethodGet, Path: "/bookings/mine", Handler: h.Booking.Mine},
			{Method: http.MethodGet, Path: "/bookings/received", Handler: h.Booking.Received},
			{Method: http.MethodGet, Path: "/bookings/stats", Handler: h.Booking.Stats},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus},
			{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel},

			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create},

			{Method: http.MethodPost, Path: "/messages", Handler: h.Message.Send, Mw: []gin.HandlerFunc{limiter.Message()}},
			{Method: http.MethodGet, Path: "/messages", Handler: h.Message.List},
			{Method: http.MethodGet, Path: "/messages/unread-count", Handler: h.Message.UnreadCount},
			{Method: http.MethodPost, Path: "/messages/:id/read", Handler: h.Message.MarkRead},
			{Method: http.MethodGet, Path: "/messages/conversations/:userId", Handler: h.Message.Conversation},
			{Method: http.MethodPost, Path: "/messages/conversations/:userId/read", Handler: h.Message.MarkConversationRead},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
