package routes

import (
	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/handlers"
	"pawfam_front_end/internal/middleware"
)

// RegisterRoutes câble toutes les routes de l'API. La session est attachée
// globalement ; les groupes protégés passent par AuthRequired, les routes
// vendeur ajoutent VendorRequired.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	api.Use(middleware.Session())
	api.Use(middleware.APIRateLimit())

	// --- Authentification ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", middleware.LoginRateLimit(), h.Login)
		auth.POST("/vendor/register", h.VendorRegister)
		auth.POST("/vendor/login", middleware.LoginRateLimit(), h.VendorLogin)
		auth.GET("/me", middleware.AuthRequired(), h.Me)
		auth.POST("/logout", h.Logout)
	}

	// --- Mot de passe oublié ---
	reset := api.Group("/password-reset")
	{
		reset.GET("", h.ResetStatus)
		reset.POST("/send-otp", h.ResetSendOTP)
		reset.POST("/resend", h.ResetResendOTP)
		reset.POST("/verify", h.ResetVerifyOTP)
		reset.POST("/reset", h.ResetPassword)
		reset.POST("/back", h.ResetBack)
	}

	// --- Panier (par session, pas de login requis) ---
	cart := api.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/add", middleware.CartRateLimit(), h.AddToCart)
		cart.PATCH("/items/:productId", h.UpdateCartQuantity)
		cart.DELETE("/items/:productId", h.RemoveFromCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/toast/dismiss", h.DismissToast)
	}

	// --- Catalogues publics ---
	api.GET("/products", h.ListProducts)
	api.GET("/daycare/centers", h.ListCenters)
	api.GET("/adoption/pets", h.ListAdoptablePets)

	// --- Espace client (connecté) ---
	user := api.Group("")
	user.Use(middleware.AuthRequired())
	{
		user.POST("/checkout/open", h.OpenCheckout)
		user.POST("/checkout/validate-field", h.ValidateCheckoutField)
		user.POST("/checkout", h.SubmitCheckout)

		user.GET("/orders", h.ListOrders)
		user.PUT("/orders/:id/address", h.UpdateOrderAddress)
		user.PATCH("/orders/:id/cancel", h.CancelOrder)
		user.DELETE("/orders/:id", h.DeleteOrder)

		user.POST("/daycare/bookings/mode", h.SelectBookingMode)
		user.POST("/daycare/bookings", h.CreateBooking)
		user.GET("/daycare/bookings", h.ListBookings)
		user.PUT("/daycare/bookings/:id", h.UpdateBooking)
		user.PATCH("/daycare/bookings/:id/cancel", h.CancelBooking)
		user.DELETE("/daycare/bookings/:id", h.DeleteBooking)

		user.POST("/adoption/applications", h.SubmitApplication)
		user.GET("/adoption/applications", h.ListApplications)
		user.GET("/adoption/applications/prefill", h.PrefillApplication)
		user.PUT("/adoption/applications/:id", h.UpdateApplication)
		user.PATCH("/adoption/applications/:id/revoke", h.RevokeApplication)
		user.DELETE("/adoption/applications/:id", h.DeleteApplication)

		user.GET("/profile", h.GetProfile)
		user.POST("/profile", h.CreateProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.DELETE("/profile", h.DeleteProfile)
	}

	// --- Espace vendeur ---
	vendor := api.Group("/vendor")
	vendor.Use(middleware.AuthRequired(), middleware.VendorRequired())
	{
		vendor.GET("/profile", h.GetVendorProfile)
		vendor.POST("/profile", h.CreateVendorProfile)
		vendor.PUT("/profile", h.UpdateVendorProfile)
		vendor.DELETE("/profile", h.DeleteVendorProfile)

		vendor.GET("/centers", h.VendorListMyCenters)
		vendor.POST("/centers", h.VendorCreateCenter)
		vendor.PUT("/centers/:id", h.VendorUpdateCenter)
		vendor.DELETE("/centers/:id", h.VendorDeleteCenter)
		vendor.GET("/bookings", h.VendorListBookings)
		vendor.PATCH("/bookings/:id/status", h.VendorUpdateBookingStatus)

		vendor.GET("/products", h.VendorListMyProducts)
		vendor.POST("/products", h.VendorCreateProduct)
		vendor.PUT("/products/:id", h.VendorUpdateProduct)
		vendor.DELETE("/products/:id", h.VendorDeleteProduct)
		vendor.GET("/orders", h.VendorListOrders)
		vendor.PATCH("/orders/:id/status", h.VendorUpdateOrderStatus)

		vendor.GET("/pets", h.VendorListMyPets)
		vendor.POST("/pets", h.VendorCreatePet)
		vendor.PUT("/pets/:id", h.VendorUpdatePet)
		vendor.DELETE("/pets/:id", h.VendorDeletePet)
		vendor.GET("/applications", h.VendorListApplications)
		vendor.PATCH("/applications/:id/status", h.VendorUpdateApplicationStatus)
	}
}
