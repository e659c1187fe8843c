package routes

import (
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClinicRoutes registers the catalog, doctor and review endpoints.
func RegisterClinicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyToken(hb.Tokens)
	admin := middleware.RequireAdmin(hb.Admins)

	r.GET("/service", hb.ListServices)
	r.POST("/service", verify, admin, hb.CreateService)
	r.DELETE("/service/:name", verify, admin, hb.DeleteService)

	r.GET("/doctor", hb.ListDoctors)
	r.POST("/doctor", verify, admin, hb.AddDoctor)
	r.DELETE("/doctor/:email", verify, admin, hb.DeleteDoctor)

	r.GET("/review", hb.ListReviews)
	r.POST("/review", hb.AddReview)
}

// RegisterBookingRoutes registers availability, booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyToken(hb.Tokens)

	r.GET("/available", hb.GetAvailable)
	r.POST("/booking", hb.CreateBooking)

	// Protected routes (Require Authentication)
	protected := r.Group("")
	protected.Use(verify)
	protected.GET("/booking", hb.ListBookings)
	protected.GET("/booking/:id", hb.GetBooking)
	protected.PATCH("/booking/:id", hb.RecordPayment)
	protected.POST("/create-payment-intent", hb.CreatePaymentIntent)
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyToken(hb.Tokens)
	admin := middleware.RequireAdmin(hb.Admins)

	r.GET("/admin/:email", hb.CheckAdmin)
	r.PUT("/user/:email", hb.UpsertProfile)

	r.GET("/user", verify, hb.GetAllUsers)
	r.DELETE("/user/:email", verify, admin, hb.DeleteUser)
	r.PUT("/user/admin/:email", verify, admin, hb.MakeAdmin)
}

// RegisterHealthRoute registers the greeting and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Greeting)
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterClinicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
}
