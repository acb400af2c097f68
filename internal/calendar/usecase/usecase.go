package usecase

import (
	"context"
	"time"

	"studyplan-backend/internal/task/domain"
	"studyplan-backend/pkg/gcal"

	"golang.org/x/oauth2"
)

// CalendarClient is the slice of the Google Calendar service the
// usecase depends on, kept as an interface for testing.
type CalendarClient interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	CreateEvent(ctx context.Context, accessToken, refreshToken string, ev *gcal.Event, onTokenRefresh gcal.TokenUpdateFunc) (*gcal.Event, error)
	UpdateEvent(ctx context.Context, accessToken, refreshToken, eventID string, ev *gcal.Event, onTokenRefresh gcal.TokenUpdateFunc) (*gcal.Event, error)
	DeleteEvent(ctx context.Context, accessToken, refreshToken, eventID string, onTokenRefresh gcal.TokenUpdateFunc) error
	ListEvents(ctx context.Context, accessToken, refreshToken string, start, end time.Time, onTokenRefresh gcal.TokenUpdateFunc) ([]*gcal.Event, error)
	WatchEvents(ctx context.Context, accessToken, refreshToken, address string, onTokenRefresh gcal.TokenUpdateFunc) (*gcal.Channel, error)
}

// CalendarUsecase defines the calendar-integration business logic.
// Provider failures are logged and surfaced as plain errors; they never
// take the process down.
type CalendarUsecase interface {
	// AuthURL returns the Google consent URL for the configured client
	AuthURL() string

	// ExchangeCode performs the authorization-code exchange and stores
	// the resulting tokens in preferences.
	ExchangeCode(ctx context.Context, code string) error

	// SyncTask pushes a task to the connected calendar, creating or
	// updating its event, and records the event id on the task.
	SyncTask(ctx context.Context, taskID string) (*domain.Task, error)

	// UnsyncTask deletes the task's calendar event and clears the
	// reference.
	UnsyncTask(ctx context.Context, taskID string) (*domain.Task, error)

	// ListEvents returns remote calendar events in the window. Provider
	// failures yield an empty list.
	ListEvents(ctx context.Context, start, end time.Time) ([]*gcal.Event, error)

	// RegisterWebhook registers a push channel pointing at address
	RegisterWebhook(ctx context.Context, address string) (*gcal.Channel, error)
}
