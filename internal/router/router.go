package router

import (
	"Relief_Link/internal/handler"
	"Relief_Link/internal/middleware"
	"Relief_Link/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User      *handler.UserHandler
	Request   *handler.RequestHandler
	Offer     *handler.OfferHandler
	Alert     *handler.AlertHandler
	Coin      *handler.CoinHandler
	Subscribe *handler.SubscribeHandler
	Feed      *handler.FeedHandler
}

func InitRouter(tokens *pkg.TokenMaker, h Handlers) *gin.Engine {
	r := gin.Default()

	auth := middleware.AuthMiddleware(tokens)
	api := r.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.POST("/signup", h.User.Signup)
		userGroup.POST("/login", h.User.Login)
		userGroup.GET("/verify", h.User.Verify)
		userGroup.POST("/logout", h.User.Logout)
	}

	// Resource requests (victims)
	api.POST("/seek-resource", h.Request.Submit)
	api.GET("/seek-resource", h.Request.List)
	api.DELETE("/delete-resource/:id", auth, h.Request.Delete)

	// Resource offers (volunteers)
	api.POST("/add-resource", h.Offer.Submit)
	api.GET("/provided-resources", h.Offer.List)
	api.DELETE("/withdraw-resource/:id", auth, h.Offer.Delete)

	api.GET("/alerts", h.Alert.List)
	api.POST("/alerts", auth, h.Alert.Create)

	coinGroup := api.Group("/coin")
	{
		coinGroup.GET("/get-coins/:email", h.Coin.GetCoins)
		coinGroup.POST("/add-coins", auth, h.Coin.AddCoins)
	}

	api.POST("/subscribe", h.Subscribe.Subscribe)
	api.POST("/notify", auth, h.Subscribe.Notify)

	// Server-side proxy for the third-party feeds the SPA renders
	feedGroup := api.Group("/feeds")
	{
		feedGroup.GET("/weather", h.Feed.Weather)
		feedGroup.GET("/earthquakes", h.Feed.Earthquakes)
		feedGroup.GET("/geocode", h.Feed.Geocode)
	}

	return r
}
