package server

import (
	"github.com/gin-gonic/gin"

	model "sharedbid/internal/models"
	handler "sharedbid/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(ledger handler.AuctionLedgerInterface, accounts handler.AccountServiceInterface, tokens TokenVerifier) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(ledger)
	accountHandler := handler.NewAccountHandler(accounts)
	requireAuth := RequireAuth(tokens)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", accountHandler.RegisterHandler)
		authGroup.POST("/login", accountHandler.LoginHandler)
		authGroup.GET("/me", requireAuth, accountHandler.MeHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.ListListingsHandler)
		listings.GET("/categories", auctionHandler.CategoriesHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsByListingHandler)

		listings.POST("", requireAuth, RequireRole(model.RoleSeller), auctionHandler.CreateListingHandler)
		listings.POST("/:listing_id/complete", requireAuth, RequireRole(model.RoleSeller), auctionHandler.CompleteAuctionHandler)
		listings.POST("/:listing_id/bids", requireAuth, auctionHandler.PlaceBidHandler)
		listings.POST("/:listing_id/pool", requireAuth, auctionHandler.CreatePoolHandler)
		listings.POST("/:listing_id/pool/join", requireAuth, auctionHandler.JoinPoolHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/listings", auctionHandler.GetListingsByUserHandler)
		users.GET("/:user_id/bids", auctionHandler.GetBidsByUserHandler)
		users.GET("/:user_id/pools", auctionHandler.GetPoolsByUserHandler)
		users.GET("/:user_id/stats", auctionHandler.GetUserStatsHandler)
	}

	return router
}
