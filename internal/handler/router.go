package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jersey-storefront/internal/handler/api"
	"jersey-storefront/internal/handler/middleware"
	"jersey-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	cartHandler *api.CartHandler,
	productHandler *api.ProductHandler,
	promotionHandler *api.PromotionHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, cartHandler, productHandler, promotionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	cartHandler *api.CartHandler,
	productHandler *api.ProductHandler,
	promotionHandler *api.PromotionHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cartGroup := apiGroup.Group("/cart")
		cartGroup.Use(middleware.CartSession(cfg.Session))
		{
			addRoutes(cartGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPost, Path: "/custom-items", Handler: cartHandler.AddCustomItem},
				{Method: http.MethodPut, Path: "/items/:lineId", Handler: cartHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:lineId", Handler: cartHandler.RemoveItem},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/:id/price", Handler: productHandler.GetPrice},
			})
		}

		sales := apiGroup.Group("/admin/sales")
		{
			addRoutes(sales, []route{
				{Method: http.MethodGet, Path: "", Handler: promotionHandler.List},
				{Method: http.MethodPost, Path: "", Handler: promotionHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: promotionHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: promotionHandler.Replace},
				{Method: http.MethodPatch, Path: "/:id", Handler: promotionHandler.Patch},
				{Method: http.MethodDelete, Path: "/:id", Handler: promotionHandler.Delete},
			})
		}
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
