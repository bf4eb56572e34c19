package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Affsyamf/pemesananhotel-sub000/config"
	"github.com/Affsyamf/pemesananhotel-sub000/controllers"
	"github.com/Affsyamf/pemesananhotel-sub000/routes"
	"github.com/Affsyamf/pemesananhotel-sub000/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Tokens cannot be issued or verified without a secret: fatal if missing.
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	inventoryService := services.NewInventoryService(db)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)
	promoService := services.NewPromoService(db)
	roomService := services.NewRoomService(db, inventoryService)
	reportService := services.NewReportService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, reviewService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)
	adminController := controllers.NewAdminController(
		db, roomService, inventoryService, promoService, bookingService, reportService)

	router := routes.SetupRouter(roomController, bookingController, reviewController, adminController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
