package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
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

// SetupRouter wires the controller instances into the route tree.
func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

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
		properties := api.Group("/properties")
		{
			properties.GET("", controllers.GetProperties)
			properties.POST("", controllers.CreateProperty)
			properties.GET("/:id", controllers.GetPropertyByID)
			properties.PUT("/:id", controllers.UpdateProperty)
			properties.PATCH("/:id", controllers.UpdateProperty)
			properties.DELETE("/:id", controllers.DeleteProperty)
			properties.GET("/:id/bookings", bc.GetPropertyBookings)
			properties.GET("/:id/reviews", rc.GetPropertyReviews)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", rc.CreateReview)
			reviews.DELETE("/:id", rc.DeleteReview)
		}

		users := api.Group("/users")
		{
			users.GET("", uc.GetUsers)
			users.GET("/:id", uc.GetUserByID)
			users.POST("", uc.CreateUser)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSiteSettings)
			settings.PUT("", controllers.UpdateSiteSettings)
		}
	}

	return r
}
