package api

import (
	"context"
	"net/http"

	"boldstore-be/internal/account"
	"boldstore-be/internal/cart"
	"boldstore-be/internal/catalog"
	"boldstore-be/internal/checkout"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/metrics"
	"boldstore-be/internal/middleware"
	"boldstore-be/internal/profile"
	"boldstore-be/internal/response"
	"boldstore-be/internal/search"
	"boldstore-be/internal/wishlist"

	"github.com/gin-gonic/gin"
)

// Services is everything the HTTP API is served from.
type Services struct {
	Accounts account.Service
	Catalog  catalog.Service
	Carts    cart.Service
	Search   search.Service
	Profiles profile.Service
	Wishlist wishlist.Service
	Checkout checkout.Service

	// Ping reports storage health for /health. Optional.
	Ping func(ctx context.Context) error
}

type Options struct {
	CORSOrigin string

	// DisableRateLimit turns the per-session rate limiter off.
	DisableRateLimit bool
}

func NewRouter(s Services, opts Options) *gin.Engine {
	stats := metrics.NewHTTP()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		logger.RequestIDMiddleware(),
		logger.LoggingMiddleware(),
		countRequests(stats),
		middleware.CORS(opts.CORSOrigin),
	)

	router.GET("/health", health(s.Ping, stats))

	accountHandler := NewAccountHandler(s.Accounts)
	catalogHandler := NewCatalogHandler(s.Catalog)
	searchHandler := NewSearchHandler(s.Search)
	cartHandler := NewCartHandler(s.Carts)
	profileHandler := NewProfileHandler(s.Profiles)
	wishlistHandler := NewWishlistHandler(s.Wishlist)
	checkoutHandler := NewCheckoutHandler(s.Checkout)

	limit := func(c *gin.Context) { c.Next() }
	if !opts.DisableRateLimit {
		limit = middleware.NewRateLimiter().Middleware()
	}

	api := router.Group("/api")
	api.POST("/session", limit, accountHandler.StartSession)

	session := api.Group("", middleware.SessionMiddleware(), limit)
	{
		session.GET("/session/landing", accountHandler.Landing)
		session.GET("/onboarding", accountHandler.Onboarding)

		authGroup := session.Group("/auth")
		authGroup.POST("/register", accountHandler.Register)
		authGroup.POST("/login", accountHandler.Login)
		authGroup.POST("/logout", accountHandler.Logout)
		authGroup.POST("/forgot-password", accountHandler.ForgotPassword)
	}

	shop := session.Group("", middleware.RequireLogin(s.Accounts))
	{
		shop.GET("/home", catalogHandler.Home)
		shop.GET("/categories", catalogHandler.Categories)
		shop.GET("/categories/:id/products", catalogHandler.CategoryProducts)
		shop.GET("/products/:id", catalogHandler.Product)
		shop.GET("/filters", catalogHandler.Filters)

		shop.GET("/search", searchHandler.Search)
		shop.GET("/search/recent", searchHandler.Recent)
		shop.DELETE("/search/recent", searchHandler.ClearRecent)

		carts := shop.Group("/cart")
		carts.GET("", cartHandler.Get)
		carts.DELETE("", cartHandler.Clear)
		carts.POST("/items", cartHandler.AddItem)

		items := carts.Group("/items/:productId")
		items.PATCH("", cartHandler.UpdateQty)
		items.DELETE("", cartHandler.DeleteItem)
		items.POST("/increment", cartHandler.Increment)
		items.POST("/decrement", cartHandler.Decrement)

		shop.GET("/profile", profileHandler.Get)
		shop.PUT("/profile", profileHandler.Update)
		shop.PUT("/profile/avatar", profileHandler.SetAvatar)
		shop.DELETE("/profile/avatar", profileHandler.RemoveAvatar)

		shop.GET("/wishlist", wishlistHandler.List)
		shop.POST("/wishlist/:productId/toggle", wishlistHandler.Toggle)

		co := shop.Group("/checkout")
		co.GET("", checkoutHandler.State)
		co.POST("/address", checkoutHandler.SubmitAddress)
		co.POST("/payment", checkoutHandler.SubmitPayment)
		co.POST("/back", checkoutHandler.Back)
		co.POST("/complete", checkoutHandler.Complete)
	}

	return router
}

func countRequests(stats *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		stats.Observe(c.Writer.Status())
	}
}

func health(ping func(ctx context.Context) error, stats *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Storage unavailable", err.Error())
				return
			}
		}
		response.Success(c, http.StatusOK, "ok", gin.H{
			"status":  "ok",
			"metrics": stats.Snapshot(),
		})
	}
}
