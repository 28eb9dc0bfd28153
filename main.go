package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	reviewRepoPkg "doctorsportal/database/repository/review"
	serviceRepoPkg "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/review"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// The unique conflict-key index must exist before any booking traffic.
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}

	// Services.
	availabilityEngine := &availability.DefaultEngine{
		Catalog:  serviceRepo,
		Bookings: bookingRepo,
	}
	bookingService := &booking.DefaultService{
		Bookings:  bookingRepo,
		Payments:  paymentRepo,
		Reminders: booking.NewAsynqReminderQueue(),
		Logger:    logger,
	}
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Sessions: utils.GetAuthCacheClient(),
	}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}
	reviewService := &review.DefaultReviewService{Repo: reviewRepo}
	paymentClient := payment.NewStripeClient()

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Sessions:    utils.GetAuthCacheClient(),
		UserService: userService,

		ServiceHandler: handlers.NewServiceHandler(serviceRepo, availabilityEngine),
		BookingHandler: handlers.NewBookingHandler(bookingService, logger),
		PaymentHandler: handlers.NewPaymentHandler(paymentClient),
		UserHandler:    handlers.NewUserHandler(userService),
		AdminHandler:   handlers.NewAdminHandler(userService),
		DoctorHandler:  handlers.NewDoctorHandler(doctorService),
		ReviewHandler:  handlers.NewReviewHandler(reviewService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
