package api

import (
	calDelivery "studyplan-backend/internal/calendar/delivery"
	calUsecase "studyplan-backend/internal/calendar/usecase"
	prefsDelivery "studyplan-backend/internal/preferences/delivery"
	prefsUsecase "studyplan-backend/internal/preferences/usecase"
	subjectDelivery "studyplan-backend/internal/subject/delivery"
	subjectUsecase "studyplan-backend/internal/subject/usecase"
	taskDelivery "studyplan-backend/internal/task/delivery"
	taskUsecase "studyplan-backend/internal/task/usecase"
	"studyplan-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	taskHandler     *taskDelivery.TaskHandler
	subjectHandler  *subjectDelivery.SubjectHandler
	prefsHandler    *prefsDelivery.PreferencesHandler
	calendarHandler *calDelivery.CalendarHandler
}

func NewHandler(taskUc taskUsecase.TaskUsecase, subjectUc subjectUsecase.SubjectUsecase, prefsUc prefsUsecase.PreferencesUsecase, calUc calUsecase.CalendarUsecase) *Handler {
	return &Handler{
		taskHandler:     taskDelivery.NewTaskHandler(taskUc),
		subjectHandler:  subjectDelivery.NewSubjectHandler(subjectUc),
		prefsHandler:    prefsDelivery.NewPreferencesHandler(prefsUc),
		calendarHandler: calDelivery.NewCalendarHandler(calUc, prefsUc),
	}
}

// Engine builds the gin engine with middleware and routes registered.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.Use(metrics.Middleware())

	SetupRoutes(r, h.taskHandler, h.subjectHandler, h.prefsHandler, h.calendarHandler)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
