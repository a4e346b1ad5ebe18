package calendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/nikmy/interviewd/pkg/errors"
)

// New builds the adapter the config asks for; with no provider set it
// returns the disabled stub so callers can still probe IsConfigured.
func New(ctx context.Context, cfg Config) (API, error) {
	if cfg.Provider != "google" {
		return Disabled(), nil
	}
	return newGoogle(ctx, cfg)
}

func newGoogle(ctx context.Context, cfg Config) (*googleCalendar, error) {
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" || cfg.Google.RefreshToken == "" {
		return nil, errors.Error("google calendar credentials are incomplete")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	client := oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: cfg.Google.RefreshToken})

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.WrapFail(err, "init google calendar service")
	}

	calID := cfg.Google.CalendarID
	if calID == "" {
		calID = "primary"
	}

	return &googleCalendar{svc: svc, calID: calID}, nil
}

type googleCalendar struct {
	svc   *gcal.Service
	calID string
}

func (g *googleCalendar) IsConfigured() bool {
	return true
}

func (g *googleCalendar) CreateEvent(ctx context.Context, req CreateRequest) (*Event, error) {
	ev := &gcal.Event{
		Summary: req.Summary,
		Start:   &gcal.EventDateTime{DateTime: req.Start.Format(time.RFC3339)},
		End:     &gcal.EventDateTime{DateTime: req.End.Format(time.RFC3339)},
		Attendees: []*gcal.EventAttendee{
			{Email: req.OrganizerEmail, Organizer: true},
			{Email: req.AttendeeEmail},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: req.IdempotencyKey,
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := g.svc.Events.
		Insert(g.calID, ev).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.WrapFail(err, "insert calendar event")
	}

	return &Event{
		ExternalID:  created.Id,
		MeetingLink: created.HangoutLink,
		Status:      created.Status,
	}, nil
}

func (g *googleCalendar) PatchCancelled(ctx context.Context, externalID string) error {
	_, err := g.svc.Events.
		Patch(g.calID, externalID, &gcal.Event{Status: StatusCancelled}).
		Context(ctx).
		Do()
	return errors.WrapFail(err, "patch calendar event cancelled")
}

func (g *googleCalendar) GetEvent(ctx context.Context, externalID string) (*Event, error) {
	ev, err := g.svc.Events.
		Get(g.calID, externalID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.WrapFail(err, "get calendar event")
	}

	return &Event{
		ExternalID:  ev.Id,
		MeetingLink: ev.HangoutLink,
		Status:      ev.Status,
	}, nil
}
