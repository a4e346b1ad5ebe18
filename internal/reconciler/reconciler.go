package reconciler

import (
	"context"
	"time"

	"github.com/nikmy/interviewd/internal/calendar"
	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

type Config struct {
	Interval time.Duration `yaml:"interval"`

	OfferTTL   time.Duration `yaml:"offer_ttl"`
	ConfirmTTL time.Duration `yaml:"confirm_ttl"`

	// MinLead closes an offer shortly before its earliest slot starts,
	// so a candidate cannot pick a slot that is about to begin.
	MinLead time.Duration `yaml:"min_lead"`
}

func (c *Config) withDefaults() {
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.OfferTTL <= 0 {
		c.OfferTTL = 48 * time.Hour
	}
	if c.ConfirmTTL <= 0 {
		c.ConfirmTTL = 24 * time.Hour
	}
	if c.MinLead <= 0 {
		c.MinLead = 15 * time.Minute
	}
}

func New(cfg Config, store storage, svc scheduler, cal calendarAPI, log logger.Logger) *Reconciler {
	cfg.withDefaults()
	return &Reconciler{
		cfg:   cfg,
		store: store,
		svc:   svc,
		cal:   cal,
		log:   log.With("reconciler"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Reconciler sweeps the schedule store on a fixed interval, cancelling
// expired offers and stalled confirmations and picking up meetings
// cancelled on the remote calendar. Every sweep is idempotent: losing
// a race to a user transition is treated as someone else having
// resolved the schedule already.
type Reconciler struct {
	cfg   Config
	store storage
	svc   scheduler
	cal   calendarAPI
	log   logger.Logger
	now   func() time.Time
}

func (r *Reconciler) Run(ctx context.Context) {
	tick := time.NewTicker(r.cfg.Interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	r.sweepOffers(ctx)
	r.sweepConfirmations(ctx)
	r.sweepExternal(ctx)
}

func (r *Reconciler) sweepOffers(ctx context.Context) {
	offered, err := r.store.ListByState(ctx, interviews.StateSlotsOffered)
	if err != nil {
		r.log.Error(errors.WrapFail(err, "list offered schedules"))
		return
	}

	now := r.now()

	for _, s := range offered {
		expiry := s.OfferSentAt.Add(r.cfg.OfferTTL)

		earliest, ok, err := r.store.EarliestOfferedStart(ctx, s.ID)
		if err != nil {
			r.log.Error(errors.WrapFail(err, "find earliest offered slot"))
			continue
		}
		if ok {
			if lead := earliest.Add(-r.cfg.MinLead); lead.Before(expiry) {
				expiry = lead
			}
		}

		if now.After(expiry) {
			r.cancel(ctx, s.ID, interviews.CancelledByTimeout)
		}
	}
}

func (r *Reconciler) sweepConfirmations(ctx context.Context) {
	picked, err := r.store.ListByState(ctx, interviews.StateCandidatePicked)
	if err != nil {
		r.log.Error(errors.WrapFail(err, "list picked schedules"))
		return
	}

	now := r.now()

	for _, s := range picked {
		if s.CandidateConfirmedAt == nil {
			continue
		}
		if s.CandidateConfirmedAt.Add(r.cfg.ConfirmTTL).Before(now) {
			r.cancel(ctx, s.ID, interviews.CancelledByTimeout)
		}
	}
}

func (r *Reconciler) sweepExternal(ctx context.Context) {
	if !r.cal.IsConfigured() {
		return
	}

	scheduled, err := r.store.ListByState(ctx, interviews.StateScheduled)
	if err != nil {
		r.log.Error(errors.WrapFail(err, "list scheduled meetings"))
		return
	}

	for _, s := range scheduled {
		if s.ExternalEventID == "" {
			continue
		}

		event, err := r.cal.GetEvent(ctx, s.ExternalEventID)
		if err != nil {
			r.log.Warn(errors.WrapFailf(err, "poll calendar event %s", s.ExternalEventID))
			continue
		}

		if event.Status == calendar.StatusCancelled {
			r.cancel(ctx, s.ID, interviews.CancelledExternally)
		}
	}
}

func (r *Reconciler) cancel(ctx context.Context, scheduleID string, source interviews.CancelSource) {
	err := r.svc.Cancel(ctx, scheduleID, source)

	// A conflict means a concurrent transition won the race; the
	// schedule is already resolved, which is what we wanted.
	if errors.Is(err, interviews.ErrConflict) {
		return
	}
	if err != nil {
		r.log.Error(errors.WrapFailf(err, "cancel schedule %s", scheduleID))
		return
	}

	r.log.Infof("cancelled schedule %s (%s)", scheduleID, source)
}
