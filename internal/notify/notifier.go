package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

type Kind string

const (
	KindOfferSent  Kind = "offer_sent"
	KindSlotPicked Kind = "slot_picked"
	KindMeetReady  Kind = "meeting_ready"
	KindCancelled  Kind = "interview_cancelled"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

// Event describes one scheduling state change worth telling the
// parties about. Delivery is fire-and-forget: the state change that
// produced the event never rolls back on a send failure.
type Event struct {
	Kind Kind `json:"kind"`

	ScheduleID    string `json:"schedule_id"`
	ApplicationID string `json:"application_id"`
	JobTitle      string `json:"job_title"`

	Slot        *[2]time.Time `json:"slot,omitempty"`
	MeetingLink string        `json:"meeting_link,omitempty"`

	EmployerChat  int64 `json:"employer_chat,omitempty"`
	CandidateChat int64 `json:"candidate_chat,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NewFanout delivers every event to all channels, collecting failures
// instead of short-circuiting.
func NewFanout(channels ...Notifier) Notifier {
	return fanout(channels)
}

type fanout []Notifier

func (f fanout) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range f {
		err := n.Notify(ctx, event)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Collapse(errs)
}

// Nop is used when no notification channel is configured.
func Nop() Notifier {
	return nop{}
}

type nop struct{}

func (nop) Notify(context.Context, Event) error { return nil }

func render(e Event) string {
	switch e.Kind {
	case KindOfferSent:
		return fmt.Sprintf("Interview slots for %q are ready, please pick one.", e.JobTitle)
	case KindSlotPicked:
		if e.Slot != nil {
			return fmt.Sprintf(
				"Candidate picked %s for the %q interview, please confirm.",
				e.Slot[0].UTC().Format("Mon, 02 Jan 15:04 MST"), e.JobTitle,
			)
		}
		return fmt.Sprintf("Candidate picked a slot for the %q interview, please confirm.", e.JobTitle)
	case KindMeetReady:
		return fmt.Sprintf("The %q interview is scheduled: %s", e.JobTitle, e.MeetingLink)
	case KindCancelled:
		return fmt.Sprintf("The %q interview has been cancelled.", e.JobTitle)
	default:
		return fmt.Sprintf("Update on the %q interview.", e.JobTitle)
	}
}

// NewFromConfig wires the configured channels; with none enabled the
// notifier is a no-op.
func NewFromConfig(cfg Config, log logger.Logger) Notifier {
	var channels []Notifier

	if cfg.Telegram.Token != "" {
		tg, err := NewTelegram(cfg.Telegram)
		if err != nil {
			log.Warn(errors.WrapFail(err, "init telegram notifier"))
		} else {
			channels = append(channels, tg)
		}
	}

	if len(cfg.Kafka.Brokers) != 0 {
		channels = append(channels, NewKafka(cfg.Kafka))
	}

	if len(channels) == 0 {
		return Nop()
	}

	return NewFanout(channels...)
}
