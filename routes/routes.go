package routes

import (
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the handlers and middleware dependencies needed to
// register the route table.
type HandlerBundle struct {
	Sessions    *redis.Client
	UserService user.UserService

	ServiceHandler *handlers.ServiceHandler
	BookingHandler *handlers.BookingHandler
	PaymentHandler *handlers.PaymentHandler
	UserHandler    *handlers.UserHandler
	AdminHandler   *handlers.AdminHandler
	DoctorHandler  *handlers.DoctorHandler
	ReviewHandler  *handlers.ReviewHandler
}

// RegisterRoutes wires the full route table onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.RootHandler)
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")

	// Public endpoints: catalog, availability, reviews, admin-status lookup,
	// and the sign-in upsert that issues tokens.
	api.GET("/services", hb.ServiceHandler.ListServicesHandler)
	api.GET("/available", hb.ServiceHandler.GetAvailableHandler)
	api.GET("/reviews", hb.ReviewHandler.ListReviewsHandler)
	api.GET("/users/admin/:email", hb.UserHandler.GetAdminStatusHandler)
	api.PUT("/users/:email", hb.UserHandler.UpsertUserHandler)

	// Authenticated endpoints.
	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware(hb.Sessions))
	auth.GET("/bookings", hb.BookingHandler.ListPatientBookingsHandler)
	auth.POST("/bookings", hb.BookingHandler.SubmitBookingHandler)
	auth.GET("/bookings/:id", hb.BookingHandler.GetBookingByIDHandler)
	auth.PATCH("/bookings/:id", hb.BookingHandler.ConfirmPaymentHandler)
	auth.POST("/payments/create-intent", hb.PaymentHandler.CreatePaymentIntentHandler)
	auth.POST("/reviews", hb.ReviewHandler.AddReviewHandler)
	auth.GET("/users", hb.UserHandler.ListUsersHandler)
	auth.DELETE("/users/revoke", hb.UserHandler.RevokeTokenHandler)

	// Privileged endpoints sit behind the role gate.
	admin := api.Group("")
	admin.Use(middleware.JWTAuthMiddleware(hb.Sessions), middleware.AdminAuthMiddleware(hb.UserService))
	admin.PUT("/users/admin/:email", hb.AdminHandler.PromoteAdminHandler)
	admin.PATCH("/users/admin/:email", hb.AdminHandler.DemoteAdminHandler)
	admin.GET("/doctors", hb.DoctorHandler.ListDoctorsHandler)
	admin.POST("/doctors", hb.DoctorHandler.AddDoctorHandler)
	admin.DELETE("/doctors/:email", hb.DoctorHandler.DeleteDoctorHandler)
}
