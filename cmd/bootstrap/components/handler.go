package components

import (
	"mysterybox-storefront/internal/handler"
	"mysterybox-storefront/internal/handler/api"
	"mysterybox-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewPromotionHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Product      *api.ProductHandler
	Promotion    *api.PromotionHandler
	Checkout     *api.CheckoutHandler
	Order        *api.OrderHandler
	Notification *api.NotificationHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Product:      p.Product,
		Promotion:    p.Promotion,
		Checkout:     p.Checkout,
		Order:        p.Order,
		Notification: p.Notification,
	}
}
