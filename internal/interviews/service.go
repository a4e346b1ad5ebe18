package interviews

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/interviewd/internal/calendar"
	"github.com/nikmy/interviewd/internal/jobs"
	"github.com/nikmy/interviewd/internal/notify"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

func NewService(
	store Storage,
	resolver jobs.Resolver,
	cal calendar.API,
	notifier notify.Notifier,
	log logger.Logger,
) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
		cal:      cal,
		notifier: notifier,
		log:      log.With("interviews"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Service drives each interview through its state machine. All state
// legality is enforced by the conditional updates in Storage; the
// service adds ownership checks, collaborator calls and notifications.
type Service struct {
	store    Storage
	resolver jobs.Resolver
	cal      calendar.API
	notifier notify.Notifier
	log      logger.Logger
	now      func() time.Time
}

// SendOffer creates the schedule for an application and attaches the
// offered slots. Each application gets at most one schedule, ever.
func (s *Service) SendOffer(ctx context.Context, employerID, applicationID string, slots [][2]time.Time) (*Schedule, error) {
	app, err := s.resolveOwned(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	if !app.Published {
		return nil, errors.Wrap(ErrConflict, "job is not published")
	}

	now := s.now()

	if len(slots) == 0 {
		return nil, errors.Wrap(ErrValidation, "at least one slot is required")
	}
	for _, slot := range slots {
		if !slot[0].Before(slot[1]) {
			return nil, errors.Wrap(ErrValidation, "slot start must be before its end")
		}
		if !slot[0].After(now) {
			return nil, errors.Wrap(ErrValidation, "slot must be in the future")
		}
	}

	schedule := &Schedule{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		JobID:         app.JobID,
		EmployerID:    employerID,
		CandidateID:   app.CandidateID,
		State:         StateSlotsOffered,
		StateVersion:  1,
		OfferSentAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	offered := make([]OfferedSlot, 0, len(slots))
	for _, slot := range slots {
		offered = append(offered, OfferedSlot{
			ID:         uuid.NewString(),
			ScheduleID: schedule.ID,
			EmployerID: employerID,
			SlotStart:  slot[0].UTC(),
			SlotEnd:    slot[1].UTC(),
			Status:     SlotOffered,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	err = s.store.CreateOffer(ctx, schedule, offered)
	if err != nil {
		return nil, err
	}

	s.send(ctx, notify.Event{
		Kind:          notify.KindOfferSent,
		ScheduleID:    schedule.ID,
		ApplicationID: applicationID,
		JobTitle:      app.JobTitle,
		CandidateChat: app.CandidateChat,
	})

	return schedule, nil
}

// PickSlot confirms one offered slot on behalf of the candidate and
// releases the rest. Under a race exactly one caller wins; the loser
// observes ErrConflict from the conditional update.
func (s *Service) PickSlot(ctx context.Context, candidateID, scheduleID, slotID string) (*Schedule, error) {
	schedule, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil || schedule.CandidateID != candidateID {
		return nil, ErrNotFound
	}

	updated, err := s.store.ConfirmSlot(ctx, scheduleID, slotID, s.now())
	if err != nil {
		return nil, err
	}

	event := notify.Event{
		Kind:          notify.KindSlotPicked,
		ScheduleID:    updated.ID,
		ApplicationID: updated.ApplicationID,
	}
	if updated.ChosenSlotStart != nil && updated.ChosenSlotEnd != nil {
		event.Slot = &[2]time.Time{*updated.ChosenSlotStart, *updated.ChosenSlotEnd}
	}
	s.notifyParties(ctx, updated.ApplicationID, event)

	return updated, nil
}

// EmployerConfirm finalizes the meeting. The calendar event is created
// before the state write, so a second confirmation is rejected by the
// conditional update without a second calendar call.
func (s *Service) EmployerConfirm(ctx context.Context, employerID, applicationID string) (*Schedule, error) {
	app, err := s.resolveOwned(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.store.GetByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrNotFound
	}

	if schedule.State != StateCandidatePicked {
		return nil, errors.Wrap(ErrConflict, "schedule is not awaiting employer confirmation")
	}
	if schedule.ExternalEventID != "" {
		return nil, errors.Wrap(ErrConflict, "meeting has already been created")
	}
	if schedule.ChosenSlotStart == nil || schedule.ChosenSlotEnd == nil {
		return nil, errors.Wrap(ErrConflict, "no slot has been chosen")
	}

	if !s.cal.IsConfigured() {
		return nil, ErrCalendarUnavailable
	}

	event, err := s.cal.CreateEvent(ctx, calendar.CreateRequest{
		Start:          *schedule.ChosenSlotStart,
		End:            *schedule.ChosenSlotEnd,
		OrganizerEmail: app.EmployerEmail,
		AttendeeEmail:  app.CandidateEmail,
		IdempotencyKey: schedule.ID,
		Summary:        "Interview: " + app.JobTitle,
	})
	if err != nil {
		return nil, errors.Wrap(ErrCalendarUnavailable, err.Error())
	}

	updated, err := s.store.MarkScheduled(ctx, schedule.ID, event.MeetingLink, event.ExternalID)
	if err != nil {
		// Someone beat us to a transition; drop the event we created
		// so the remote calendar does not keep an orphan meeting.
		patchErr := s.cal.PatchCancelled(ctx, event.ExternalID)
		if patchErr != nil {
			s.log.Warn(errors.WrapFail(patchErr, "cancel orphan calendar event"))
		}
		return nil, err
	}

	s.send(ctx, notify.Event{
		Kind:          notify.KindMeetReady,
		ScheduleID:    updated.ID,
		ApplicationID: applicationID,
		JobTitle:      app.JobTitle,
		MeetingLink:   updated.MeetingLink,
		EmployerChat:  app.EmployerChat,
		CandidateChat: app.CandidateChat,
	})

	return updated, nil
}

// CancelByEmployer and CancelByCandidate are the user-triggered entry
// points; both converge on the same cancel routine as the reconciler.
func (s *Service) CancelByEmployer(ctx context.Context, employerID, scheduleID string) error {
	schedule, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule == nil || schedule.EmployerID != employerID {
		return ErrNotFound
	}

	return s.Cancel(ctx, scheduleID, CancelledByEmployer)
}

func (s *Service) CancelByCandidate(ctx context.Context, candidateID, scheduleID string) error {
	schedule, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule == nil || schedule.CandidateID != candidateID {
		return ErrNotFound
	}

	return s.Cancel(ctx, scheduleID, CancelledByCandidate)
}

// Cancel releases the slots, records the source and, when a calendar
// event exists, asks the provider to cancel it. The provider call is
// best-effort: local cancellation is the source of truth.
func (s *Service) Cancel(ctx context.Context, scheduleID string, source CancelSource) error {
	cancelled, err := s.store.MarkCancelled(ctx, scheduleID, source)
	if err != nil {
		return err
	}

	if cancelled.ExternalEventID != "" {
		err = s.cal.PatchCancelled(ctx, cancelled.ExternalEventID)
		if err != nil {
			s.log.Warn(errors.WrapFail(err, "cancel remote calendar event"))
		}
	}

	s.notifyParties(ctx, cancelled.ApplicationID, notify.Event{
		Kind:          notify.KindCancelled,
		ScheduleID:    cancelled.ID,
		ApplicationID: cancelled.ApplicationID,
	})

	return nil
}

// ListOffers returns all schedules where the candidate is a party.
func (s *Service) ListOffers(ctx context.Context, candidateID string) ([]Schedule, error) {
	return s.store.ListByCandidate(ctx, candidateID)
}

// GetForCandidate returns one schedule with its slots, hiding foreign
// schedules behind ErrNotFound.
func (s *Service) GetForCandidate(ctx context.Context, candidateID, scheduleID string) (*Schedule, []OfferedSlot, error) {
	schedule, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, nil, err
	}
	if schedule == nil || schedule.CandidateID != candidateID {
		return nil, nil, ErrNotFound
	}

	slots, err := s.store.ListSlots(ctx, scheduleID)
	if err != nil {
		return nil, nil, err
	}

	return schedule, slots, nil
}

// CheckApplication verifies the application exists and belongs to the
// employer; used before exposing slot previews.
func (s *Service) CheckApplication(ctx context.Context, employerID, applicationID string) error {
	_, err := s.resolveOwned(ctx, employerID, applicationID)
	return err
}

func (s *Service) ListForEmployer(ctx context.Context, employerID string, from, to time.Time) ([]Schedule, error) {
	return s.store.ListByEmployer(ctx, employerID, from, to)
}

func (s *Service) resolveOwned(ctx context.Context, employerID, applicationID string) (*jobs.Application, error) {
	app, err := s.resolver.Resolve(ctx, applicationID)
	if err != nil {
		return nil, errors.WrapFail(err, "resolve application")
	}
	if app == nil || app.EmployerID != employerID {
		return nil, ErrNotFound
	}
	return app, nil
}

// notifyParties re-resolves the application for contact details; a
// failed lookup downgrades to an event without chat ids.
func (s *Service) notifyParties(ctx context.Context, applicationID string, event notify.Event) {
	app, err := s.resolver.Resolve(ctx, applicationID)
	if err == nil && app != nil {
		event.JobTitle = app.JobTitle
		event.EmployerChat = app.EmployerChat
		event.CandidateChat = app.CandidateChat
	}

	s.send(ctx, event)
}

func (s *Service) send(ctx context.Context, event notify.Event) {
	err := s.notifier.Notify(ctx, event)
	if err != nil {
		s.log.Warn(errors.WrapFailf(err, "deliver %s notification", event.Kind))
	}
}
