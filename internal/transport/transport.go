package transport

import (
	"github.com/ds124wfegd/activity-registration/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(activityHandler *ActivityHandler, agendaHandler *AgendaHandler, enrollmentHandler *EnrollmentHandler) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// API routes
	api := router.Group("/api/v1")
	{
		// Activity browsing and agenda routes
		activities := api.Group("/activities")
		{
			activities.GET("", agendaHandler.GetByDate)
			activities.GET("/days", agendaHandler.GetDays)
			activities.GET("/summary", agendaHandler.GetSummary)
			activities.POST("/:id/enroll", enrollmentHandler.Enroll)
		}

		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.GET("/users/:user_id", enrollmentHandler.GetUserReservations)
		}

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/activities", activityHandler.CreateActivity)
			admin.GET("/activities", activityHandler.GetAllActivities)
			admin.GET("/activities/:id", activityHandler.GetActivity)
			admin.POST("/places", activityHandler.CreatePlace)
			admin.GET("/places", activityHandler.GetAllPlaces)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return router
}
