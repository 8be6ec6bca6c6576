package router

import (
	"github.com/vruksha/storefront/internal/http/handlers/public"
	"github.com/vruksha/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// New builds the gin engine with the full storefront route table.
func New(container *provider.Container) *gin.Engine {
	gin.SetMode(container.Config.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS(container.Config.CORS))

	handler := public.NewHandler(container)
	authRequired := UserJWTAuth(container.AuthService)

	api := engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", LoginRateLimit(container.Config.Security.LoginRateLimit), handler.Login)
			auth.POST("/logout", authRequired, handler.Logout)
			auth.GET("/me", authRequired, handler.Me)

			address := auth.Group("/address", authRequired)
			{
				address.GET("", handler.ListAddresses)
				address.POST("", handler.CreateAddress)
				address.PUT("/:id", handler.UpdateAddress)
				address.DELETE("/:id", handler.DeleteAddress)
			}
		}

		api.GET("/home", handler.Home)
		api.GET("/categories", handler.ListCategories)
		api.GET("/categories/:id", handler.GetCategory)
		api.GET("/products", handler.ListProducts)
		api.GET("/products/category/:id", handler.ListProductsByCategory)
		api.GET("/products/:id", handler.GetProduct)
		api.GET("/sliders", handler.ListSliders)
		api.GET("/sliders/:id", handler.GetSlider)
		api.GET("/pages", handler.ListPages)
		api.GET("/pages/:slug", handler.GetPage)

		cart := api.Group("/cart", authRequired)
		{
			cart.GET("", handler.GetCart)
			cart.POST("/add", handler.AddToCart)
			cart.PUT("/update", handler.UpdateCartItem)
			cart.DELETE("/item/:id", handler.RemoveCartItem)
		}

		orders := api.Group("/orders", authRequired)
		{
			orders.POST("/create", handler.CreateOrder)
			orders.GET("/my-orders", handler.MyOrders)
			orders.GET("/:id", handler.GetOrder)
		}
	}

	return engine
}
