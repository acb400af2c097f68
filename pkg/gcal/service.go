package gcal

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/google/uuid"
)

// primaryCalendarID is the only calendar this service writes to.
const primaryCalendarID = "primary"

// TokenUpdateFunc is a callback invoked when the oauth token is refreshed,
// so the caller can persist the new access token.
type TokenUpdateFunc func(token *oauth2.Token) error

// Event is the calendar-provider-neutral event shape used by callers.
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Channel identifies a push-notification channel registered with Google.
type Channel struct {
	ID         string `json:"id"`
	ResourceID string `json:"resourceId"`
	Expiration int64  `json:"expiration"`
}

type Service struct {
	clientID     string
	clientSecret string
	redirectURI  string
}

type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			log.Printf("[WARN] failed to persist refreshed token: %v", err)
		}
	}
	return t, nil
}

func NewService(clientID, clientSecret, redirectURI string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
	}
}

func (s *Service) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		RedirectURL:  s.redirectURI,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			calendar.CalendarScope,
			calendar.CalendarEventsScope,
		},
	}
}

// AuthURL returns the Google consent-screen URL for the calendar scopes.
func (s *Service) AuthURL() string {
	return s.oauthConfig().AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// ExchangeCode trades an authorization code for an access/refresh token pair.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %v", err)
	}
	return token, nil
}

// calendarService creates a Calendar API client with the user's tokens.
func (s *Service) calendarService(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) (*calendar.Service, error) {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	// Only force refresh if we have a refresh token
	if refreshToken != "" {
		token.Expiry = time.Now()
	}

	tokenSource := s.oauthConfig().TokenSource(ctx, token)

	wrappedSource := &notifyTokenSource{
		src:      tokenSource,
		current:  token,
		callback: onTokenRefresh,
	}

	client := oauth2.NewClient(ctx, wrappedSource)

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %v", err)
	}
	return srv, nil
}

func toAPIEvent(ev *Event) *calendar.Event {
	return &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
	}
}

func fromAPIEvent(ev *calendar.Event) *Event {
	out := &Event{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
	}
	if ev.Start != nil && ev.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
			out.Start = t
		}
	}
	if ev.End != nil && ev.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.End.DateTime); err == nil {
			out.End = t
		}
	}
	return out
}

// CreateEvent inserts an event into the user's primary calendar.
func (s *Service) CreateEvent(ctx context.Context, accessToken, refreshToken string, ev *Event, onTokenRefresh TokenUpdateFunc) (*Event, error) {
	srv, err := s.calendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	created, err := srv.Events.Insert(primaryCalendarID, toAPIEvent(ev)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create event: %v", err)
	}
	return fromAPIEvent(created), nil
}

// UpdateEvent replaces an existing event on the primary calendar.
func (s *Service) UpdateEvent(ctx context.Context, accessToken, refreshToken, eventID string, ev *Event, onTokenRefresh TokenUpdateFunc) (*Event, error) {
	srv, err := s.calendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	updated, err := srv.Events.Update(primaryCalendarID, eventID, toAPIEvent(ev)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to update event %s: %v", eventID, err)
	}
	return fromAPIEvent(updated), nil
}

// DeleteEvent removes an event from the primary calendar.
func (s *Service) DeleteEvent(ctx context.Context, accessToken, refreshToken, eventID string, onTokenRefresh TokenUpdateFunc) error {
	srv, err := s.calendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return err
	}

	if err := srv.Events.Delete(primaryCalendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to delete event %s: %v", eventID, err)
	}
	return nil
}

// ListEvents returns single events on the primary calendar within the
// given window, ordered by start time.
func (s *Service) ListEvents(ctx context.Context, accessToken, refreshToken string, start, end time.Time, onTokenRefresh TokenUpdateFunc) ([]*Event, error) {
	srv, err := s.calendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	call := srv.Events.List(primaryCalendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339))

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list events: %v", err)
	}

	events := make([]*Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, fromAPIEvent(item))
	}
	return events, nil
}

// WatchEvents registers a push-notification channel for the primary
// calendar. Google posts change notifications to the given address for
// the lifetime of the channel (7 days here).
func (s *Service) WatchEvents(ctx context.Context, accessToken, refreshToken, address string, onTokenRefresh TokenUpdateFunc) (*Channel, error) {
	srv, err := s.calendarService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	channel := &calendar.Channel{
		Id:      "studyplan-" + uuid.New().String(),
		Type:    "web_hook",
		Address: address,
		Token:   "studyplan-" + primaryCalendarID,
		Params:  map[string]string{"ttl": "604800"},
	}

	created, err := srv.Events.Watch(primaryCalendarID, channel).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to register watch channel: %v", err)
	}

	return &Channel{
		ID:         created.Id,
		ResourceID: created.ResourceId,
		Expiration: created.Expiration,
	}, nil
}
