package api

import (
	"net/http"

	calDelivery "studyplan-backend/internal/calendar/delivery"
	prefsDelivery "studyplan-backend/internal/preferences/delivery"
	subjectDelivery "studyplan-backend/internal/subject/delivery"
	taskDelivery "studyplan-backend/internal/task/delivery"
	"studyplan-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, taskHandler *taskDelivery.TaskHandler, subjectHandler *subjectDelivery.SubjectHandler, prefsHandler *prefsDelivery.PreferencesHandler, calendarHandler *calDelivery.CalendarHandler) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/range", taskHandler.GetTasksInRange)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Subject routes
		subjects := api.Group("/subjects")
		{
			subjects.GET("", subjectHandler.GetSubjects)
			subjects.POST("", subjectHandler.CreateSubject)
			subjects.GET("/:id", subjectHandler.GetSubjectByID)
			subjects.PATCH("/:id", subjectHandler.UpdateSubject)
			subjects.DELETE("/:id", subjectHandler.DeleteSubject)
		}

		// Preferences routes
		preferences := api.Group("/preferences")
		{
			preferences.GET("", prefsHandler.GetPreferences)
			preferences.PATCH("", prefsHandler.UpdatePreferences)
		}

		// Google Calendar routes
		calendar := api.Group("/calendar")
		{
			calendar.GET("/auth-url", calendarHandler.GetAuthURL)
			calendar.POST("/oauth/exchange", calendarHandler.ExchangeCode)
			calendar.POST("/connect", calendarHandler.Connect)
			calendar.POST("/disconnect", calendarHandler.Disconnect)
			calendar.GET("/events", calendarHandler.GetEvents)
			calendar.POST("/sync/:taskId", calendarHandler.SyncTask)
			calendar.DELETE("/sync/:taskId", calendarHandler.UnsyncTask)
			calendar.POST("/watch", calendarHandler.Watch)
			calendar.POST("/webhook", calendarHandler.Webhook)
		}
	}
}
