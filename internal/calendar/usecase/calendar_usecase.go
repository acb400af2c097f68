package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	prefsdomain "studyplan-backend/internal/preferences/domain"
	prefsrepo "studyplan-backend/internal/preferences/repository"
	"studyplan-backend/internal/task/domain"
	taskrepo "studyplan-backend/internal/task/repository"
	"studyplan-backend/pkg/gcal"

	"golang.org/x/oauth2"
)

// ErrNotConnected is returned when a calendar operation is attempted
// without stored Google credentials.
var ErrNotConnected = errors.New("google calendar not connected")

// ErrTaskNotFound mirrors the task module's absence signal for
// calendar-side task lookups.
var ErrTaskNotFound = errors.New("task not found")

// ErrNoDueDate is returned when a task without a due date is pushed;
// an event needs a start time.
var ErrNoDueDate = errors.New("task has no due date")

// ErrNoLinkedEvent is returned when unsyncing a task that was never
// pushed to the calendar.
var ErrNoLinkedEvent = errors.New("task has no linked calendar event")

// ErrCodeExchange is returned when Google rejects the authorization
// code; the caller supplied a bad or expired code.
var ErrCodeExchange = errors.New("authorization code rejected")

// eventDuration is the block reserved on the calendar for an assignment.
const eventDuration = time.Hour

// calendarUsecase implements CalendarUsecase
type calendarUsecase struct {
	client    CalendarClient
	taskRepo  taskrepo.TaskRepository
	prefsRepo prefsrepo.PreferencesRepository
}

// NewCalendarUsecase creates a new instance of calendarUsecase
func NewCalendarUsecase(client CalendarClient, taskRepo taskrepo.TaskRepository, prefsRepo prefsrepo.PreferencesRepository) CalendarUsecase {
	return &calendarUsecase{
		client:    client,
		taskRepo:  taskRepo,
		prefsRepo: prefsRepo,
	}
}

func (u *calendarUsecase) AuthURL() string {
	return u.client.AuthURL()
}

func (u *calendarUsecase) ExchangeCode(ctx context.Context, code string) error {
	token, err := u.client.ExchangeCode(ctx, code)
	if err != nil {
		log.Printf("[ERROR] authorization-code exchange failed: %v", err)
		return fmt.Errorf("%w: %v", ErrCodeExchange, err)
	}

	_, err = u.prefsRepo.Update(func(prefs *prefsdomain.UserPreferences) {
		prefs.GoogleCalendarConnected = true
		access := token.AccessToken
		prefs.GoogleAccessToken = &access
		if token.RefreshToken != "" {
			refresh := token.RefreshToken
			prefs.GoogleRefreshToken = &refresh
		}
	})
	return err
}

// credentials returns the stored token pair, or ErrNotConnected.
func (u *calendarUsecase) credentials() (access, refresh string, err error) {
	prefs, err := u.prefsRepo.Get()
	if err != nil {
		return "", "", err
	}
	if !prefs.GoogleCalendarConnected || prefs.GoogleAccessToken == nil {
		return "", "", ErrNotConnected
	}
	access = *prefs.GoogleAccessToken
	if prefs.GoogleRefreshToken != nil {
		refresh = *prefs.GoogleRefreshToken
	}
	return access, refresh, nil
}

// persistToken stores a refreshed access token back into preferences.
func (u *calendarUsecase) persistToken(token *oauth2.Token) error {
	_, err := u.prefsRepo.Update(func(prefs *prefsdomain.UserPreferences) {
		access := token.AccessToken
		prefs.GoogleAccessToken = &access
		if token.RefreshToken != "" {
			refresh := token.RefreshToken
			prefs.GoogleRefreshToken = &refresh
		}
	})
	return err
}

func eventFromTask(task *domain.Task) *gcal.Event {
	ev := &gcal.Event{
		Summary:     task.Title,
		Description: task.Description,
		Start:       *task.DueDate,
		End:         task.DueDate.Add(eventDuration),
	}
	if task.GoogleCalendarEventID != nil {
		ev.ID = *task.GoogleCalendarEventID
	}
	return ev
}

func (u *calendarUsecase) SyncTask(ctx context.Context, taskID string) (*domain.Task, error) {
	access, refresh, err := u.credentials()
	if err != nil {
		return nil, err
	}

	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.DueDate == nil {
		return nil, ErrNoDueDate
	}

	var pushed *gcal.Event
	if task.GoogleCalendarEventID != nil {
		pushed, err = u.client.UpdateEvent(ctx, access, refresh, *task.GoogleCalendarEventID, eventFromTask(task), u.persistToken)
	} else {
		pushed, err = u.client.CreateEvent(ctx, access, refresh, eventFromTask(task), u.persistToken)
	}
	if err != nil {
		log.Printf("[ERROR] calendar push for task %s failed: %v", taskID, err)
		return nil, fmt.Errorf("calendar push failed: %w", err)
	}

	updated, err := u.taskRepo.Update(taskID, func(t *domain.Task) {
		id := pushed.ID
		t.GoogleCalendarEventID = &id
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Task vanished between push and record; the remote event is
		// orphaned but the caller still gets a clean not-found.
		return nil, ErrTaskNotFound
	}
	return updated, nil
}

func (u *calendarUsecase) UnsyncTask(ctx context.Context, taskID string) (*domain.Task, error) {
	access, refresh, err := u.credentials()
	if err != nil {
		return nil, err
	}

	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.GoogleCalendarEventID == nil {
		return nil, ErrNoLinkedEvent
	}

	if err := u.client.DeleteEvent(ctx, access, refresh, *task.GoogleCalendarEventID, u.persistToken); err != nil {
		log.Printf("[ERROR] calendar event delete for task %s failed: %v", taskID, err)
		return nil, fmt.Errorf("calendar delete failed: %w", err)
	}

	updated, err := u.taskRepo.Update(taskID, func(t *domain.Task) {
		t.GoogleCalendarEventID = nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}
	return updated, nil
}

func (u *calendarUsecase) ListEvents(ctx context.Context, start, end time.Time) ([]*gcal.Event, error) {
	access, refresh, err := u.credentials()
	if err != nil {
		return nil, err
	}

	events, err := u.client.ListEvents(ctx, access, refresh, start, end, u.persistToken)
	if err != nil {
		// Pass-through integration: fail soft with an empty list.
		log.Printf("[WARN] calendar event list failed: %v", err)
		return []*gcal.Event{}, nil
	}
	return events, nil
}

func (u *calendarUsecase) RegisterWebhook(ctx context.Context, address string) (*gcal.Channel, error) {
	access, refresh, err := u.credentials()
	if err != nil {
		return nil, err
	}

	channel, err := u.client.WatchEvents(ctx, access, refresh, address, u.persistToken)
	if err != nil {
		log.Printf("[ERROR] webhook registration failed: %v", err)
		return nil, fmt.Errorf("webhook registration failed: %w", err)
	}
	return channel, nil
}
