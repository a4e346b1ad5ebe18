package interviews

import (
	"github.com/nikmy/interviewd/internal/calendar"
	"github.com/nikmy/interviewd/internal/jobs"
	"github.com/nikmy/interviewd/internal/notify"
)

type storageAPI interface {
	Storage
}

type applicationResolver interface {
	jobs.Resolver
}

type calendarAPI interface {
	calendar.API
}

type notifierAPI interface {
	notify.Notifier
}
