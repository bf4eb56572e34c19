package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/controllers"
	"github.com/Affsyamf/pemesananhotel-sub000/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public catalog, the authenticated booking/review
// surface and the admin back-office.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	rv *controllers.ReviewController,
	adm *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		public := api.Group("/public")
		{
			public.GET("/rooms", rc.ListRooms)
			public.GET("/rooms/:id", rc.GetRoom)
			public.GET("/rooms/:id/reviews", rv.ListReviews)

			authed := public.Group("")
			authed.Use(middleware.RequireAuth())
			{
				authed.POST("/bookings", bc.CreateBooking)
				authed.GET("/bookings/:id", bc.GetBooking)
				authed.POST("/bookings/:id/pay", bc.PayBooking)
				authed.PUT("/bookings/:id/cancel", bc.CancelBooking)
				authed.GET("/my-bookings", bc.MyBookings)

				authed.GET("/rooms/:id/can-review", rv.CanReview)
				authed.POST("/rooms/:id/reviews", rv.SubmitReview)
			}
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/rooms", adm.ListRooms)
			admin.POST("/rooms", adm.CreateRoom)
			admin.PUT("/rooms/:id", adm.UpdateRoom)
			admin.PATCH("/rooms/:id", adm.UpdateRoom)
			admin.DELETE("/rooms/:id", adm.DeleteRoom)

			admin.GET("/rooms/:id/inventory", adm.ListInventory)
			admin.PUT("/rooms/:id/inventory", adm.SetInventory)

			admin.GET("/promos", adm.ListPromos)
			admin.POST("/promos", adm.CreatePromo)
			admin.PATCH("/promos/:id", adm.PatchPromo)
			admin.DELETE("/promos/:id", adm.DeletePromo)

			admin.GET("/bookings", adm.ListBookings)
			admin.PUT("/bookings/:id/reject", adm.RejectBooking)
			admin.DELETE("/bookings/:id", adm.DeleteBooking)

			admin.GET("/users", adm.ListUsers)
			admin.DELETE("/users/:id", adm.DeleteUser)

			admin.GET("/reports/summary", adm.ReportSummary)
			admin.GET("/reports/top-rooms", adm.TopRooms)
		}
	}

	return r
}
