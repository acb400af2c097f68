package delivery

import (
	"errors"
	"log"
	"net/http"
	"time"

	calusecase "studyplan-backend/internal/calendar/usecase"
	prefsusecase "studyplan-backend/internal/preferences/usecase"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles Google Calendar integration requests
type CalendarHandler struct {
	calUsecase   calusecase.CalendarUsecase
	prefsUsecase prefsusecase.PreferencesUsecase
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calUsecase calusecase.CalendarUsecase, prefsUsecase prefsusecase.PreferencesUsecase) *CalendarHandler {
	return &CalendarHandler{
		calUsecase:   calUsecase,
		prefsUsecase: prefsUsecase,
	}
}

// ConnectRequest carries externally obtained Google tokens
type ConnectRequest struct {
	AccessToken  string `json:"accessToken" binding:"required"`
	RefreshToken string `json:"refreshToken"`
}

// ExchangeRequest carries an OAuth authorization code
type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// WatchRequest carries the address Google should post notifications to
type WatchRequest struct {
	Address string `json:"address" binding:"required,url"`
}

// GetAuthURL returns the Google consent URL
// GET /api/calendar/auth-url
func (h *CalendarHandler) GetAuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.calUsecase.AuthURL()})
}

// ExchangeCode performs the authorization-code exchange and stores tokens
// POST /api/calendar/oauth/exchange
func (h *CalendarHandler) ExchangeCode(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.calUsecase.ExchangeCode(c.Request.Context(), req.Code); err != nil {
		if errors.Is(err, calusecase.ErrCodeExchange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect Google Calendar"})
		return
	}

	prefs, err := h.prefsUsecase.GetPreferences()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Connect stores tokens obtained by the client and marks the calendar connected
// POST /api/calendar/connect
func (h *CalendarHandler) Connect(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.prefsUsecase.ConnectCalendar(req.AccessToken, req.RefreshToken)
	if err != nil {
		if errors.Is(err, prefsusecase.ErrInvalidPreferences) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect Google Calendar"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// Disconnect clears the stored tokens and connected flag
// POST /api/calendar/disconnect
func (h *CalendarHandler) Disconnect(c *gin.Context) {
	prefs, err := h.prefsUsecase.DisconnectCalendar()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect Google Calendar"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// SyncTask pushes a task to the connected calendar
// POST /api/calendar/sync/:taskId
func (h *CalendarHandler) SyncTask(c *gin.Context) {
	task, err := h.calUsecase.SyncTask(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		h.mapSyncError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UnsyncTask removes a task's calendar event
// DELETE /api/calendar/sync/:taskId
func (h *CalendarHandler) UnsyncTask(c *gin.Context) {
	task, err := h.calUsecase.UnsyncTask(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		h.mapSyncError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *CalendarHandler) mapSyncError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calusecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, calusecase.ErrNoLinkedEvent):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task has no linked calendar event"})
	case errors.Is(err, calusecase.ErrNotConnected):
		c.JSON(http.StatusConflict, gin.H{"error": "Google Calendar is not connected"})
	case errors.Is(err, calusecase.ErrNoDueDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task has no due date"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calendar operation failed"})
	}
}

// GetEvents lists remote calendar events inside the window
// GET /api/calendar/events?start=...&end=... (RFC3339)
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC3339"})
		return
	}

	events, err := h.calUsecase.ListEvents(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, calusecase.ErrNotConnected) {
			c.JSON(http.StatusConflict, gin.H{"error": "Google Calendar is not connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// Watch registers a push-notification channel for the primary calendar
// POST /api/calendar/watch
func (h *CalendarHandler) Watch(c *gin.Context) {
	var req WatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel, err := h.calUsecase.RegisterWebhook(c.Request.Context(), req.Address)
	if err != nil {
		if errors.Is(err, calusecase.ErrNotConnected) {
			c.JSON(http.StatusConflict, gin.H{"error": "Google Calendar is not connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register webhook"})
		return
	}

	c.JSON(http.StatusOK, channel)
}

// Webhook acknowledges Google Calendar push notifications.
// POST /api/calendar/webhook
func (h *CalendarHandler) Webhook(c *gin.Context) {
	channelID := c.GetHeader("X-Goog-Channel-Id")
	resourceState := c.GetHeader("X-Goog-Resource-State")

	log.Printf("calendar webhook received: channel=%s state=%s", channelID, resourceState)

	// "sync" is the handshake Google sends when a channel is created.
	if resourceState == "sync" {
		c.String(http.StatusOK, "OK")
		return
	}

	// TODO: pull changed events and reconcile linked tasks
	c.String(http.StatusOK, "OK")
}
