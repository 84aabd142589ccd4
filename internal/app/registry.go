package app

import (
	"go-storefront/internal/address"
	"go-storefront/internal/auth"
	"go-storefront/internal/cart"
	"go-storefront/internal/catalog"
	"go-storefront/internal/checkout"
	"go-storefront/internal/events"
	"go-storefront/internal/listing"
	"go-storefront/internal/middleware"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"
	"go-storefront/internal/wishlist"

	"github.com/gin-gonic/gin"
)

func registerModules(
	router *gin.Engine,
	sessions *session.Manager,
	cat catalog.Service,
	shop shopapi.Client,
	publisher events.Publisher,
) {
	// --- Services ---
	authService := auth.NewService(sessions)
	listingService := listing.NewService(cat, sessions)
	cartService := cart.NewService(cart.Deps{
		Sessions: sessions,
		Catalog:  cat,
		Events:   publisher,
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		Sessions: sessions,
		Catalog:  cat,
		Events:   publisher,
	})
	addressService := address.NewService(sessions)
	checkoutService := checkout.NewService(checkout.Deps{
		Sessions: sessions,
		Catalog:  cat,
		Shop:     shop,
		Events:   publisher,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	listingHandler := listing.NewHandler(listingService, cat)
	cartHandler := cart.NewHandler(cartService, cat)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	addressHandler := address.NewHandler(addressService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.Session(), middleware.OptionalAuthMiddleware())
	{
		auth.RegisterRoutes(api, authHandler)
		listing.RegisterRoutes(api, listingHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		address.RegisterRoutes(api, addressHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
