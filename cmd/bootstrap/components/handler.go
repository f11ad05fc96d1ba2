package components

import (
	"student-travels/internal/handler"
	"student-travels/internal/handler/api"
	"student-travels/internal/handler/middleware"
	"student-travels/internal/handler/validation"
	"student-travels/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCategoryHandler,
		api.NewOfferHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewFavouriteHandler,
		api.NewMessageHandler,
		api.NewDashboardHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
		newRateLimiter,
	),
	fx.Invoke(validation.Register),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth      *api.AuthHandler
	Category  *api.CategoryHandler
	Offer     *api.OfferHandler
	Booking   *api.BookingHandler
	Review    *api.ReviewHandler
	Favourite *api.FavouriteHandler
	Message   *api.MessageHandler
	Dashboard *api.DashboardHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:      p.Auth,
		Category:  p.Category,
		Offer:     p.Offer,
		Booking:   p.Booking,
		Review:    p.Review,
		Favourite: p.Favourite,
		Message:   p.Message,
		Dashboard: p.Dashboard,
	}
}

func newRateLimiter(cfg config.Config, rdb *redis.Client) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, rdb)
}
