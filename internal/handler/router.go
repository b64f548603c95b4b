package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/handler/api"
	"mysterybox-storefront/internal/handler/middleware"
	"mysterybox-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Product      *api.ProductHandler
	Promotion    *api.PromotionHandler
	Checkout     *api.CheckoutHandler
	Order        *api.OrderHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log.Location()))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	operator := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleOperator)}
	developer := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleDeveloper)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.OptionalAuth())
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
		})

		addRoutes(apiGroup.Group("/promotions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Promotion.GetSnapshot},
			{Method: http.MethodGet, Path: "/flash-offer", Handler: h.Promotion.GetFlashOffer},
			{Method: http.MethodPost, Path: "/flash-offer/claim", Handler: h.Promotion.ClaimFlashOffer},
			{Method: http.MethodPost, Path: "/flash-offer/start", Handler: h.Promotion.StartFlashOffer, Mw: operator},
			{Method: http.MethodPost, Path: "/flash-offer/stop", Handler: h.Promotion.StopFlashOffer, Mw: operator},
			{Method: http.MethodGet, Path: "/checkout-discount", Handler: h.Promotion.GetCheckoutDiscount},
			{Method: http.MethodPatch, Path: "/checkout-discount", Handler: h.Promotion.UpdateCheckoutDiscount, Mw: developer},
			{Method: http.MethodGet, Path: "/time-challenge", Handler: h.Promotion.GetTimeChallengeSettings},
			{Method: http.MethodPatch, Path: "/time-challenge", Handler: h.Promotion.UpdateTimeChallengeSettings, Mw: developer},
		})

		addRoutes(apiGroup.Group("/checkout"), []route{
			{Method: http.MethodPost, Path: "/quote", Handler: h.Checkout.Quote},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
			{Method: http.MethodGet, Path: "/:number", Handler: h.Order.GetByNumber},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(operator...)
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
			{Method: http.MethodGet, Path: "/notifications/pending", Handler: h.Notification.ListPending},
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
