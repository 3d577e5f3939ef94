package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)

	// Storefront read models; registered before /products/:id so the
	// static segments win.
	e.GET("/products/for-seller/:sellerId", productHandler.ForSeller)
	e.GET("/products/to-be-marked/:sellerId", productHandler.ToBeMarked)
	e.GET("/products/seller-history/:sellerId", productHandler.SellerHistory)
	e.GET("/products/shop/:buyerId", productHandler.Shop)
	e.GET("/products/cart/:buyerId", productHandler.Cart)
	e.GET("/products/purchase-history/:buyerId", productHandler.PurchaseHistory)
	e.GET("/products/search/filter", productHandler.Search)
	e.GET("/products/search/filter/buyer/:buyerId", productHandler.SearchForBuyer)
	e.GET("/products/search/filter/seller/:sellerId", productHandler.SearchForSeller)

	e.GET("/products/:id", productHandler.GetByID)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)

	e.POST("/products/:id/purchase", productHandler.Purchase)
	e.POST("/products/:id/bid", productHandler.Bid)
	e.PUT("/products/:id/approve/:buyerId", productHandler.Approve)
	e.PUT("/products/:id/reject/:buyerId", productHandler.Reject)
	e.DELETE("/products/:id/cancel/:buyerId", productHandler.CancelPurchase)
	e.DELETE("/products/:id/cancel-bid/:buyerId", productHandler.CancelBid)
	e.POST("/products/:id/end-auction", productHandler.EndAuction)
}
