package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewd/internal/availability"
	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func NewServer(
	cfg Config,
	log logger.Logger,
	profiles availability.Store,
	generator *availability.Generator,
	service *interviews.Service,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		StreamRequestBody:       true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		profiles:  profiles,
		generator: generator,
		service:   service,
		http:      fiber.New(fiberCfg),
		addr:      cfg.HTTP.Addr,
		log:       serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	profiles  availability.Store
	generator *availability.Generator
	service   *interviews.Service
	http      *fiber.App
	addr      string
	log       logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	employer := s.http.Group("/employer")
	employer.Post("/availability", s.handleSetAvailability)
	employer.Get("/availability", s.handleGetAvailability)
	employer.Get("/applications/:id/slots", s.handleListSlots)
	employer.Post("/applications/:id/offer", s.handleSendOffer)
	employer.Post("/applications/:id/confirm", s.handleEmployerConfirm)
	employer.Get("/schedules", s.handleEmployerSchedules)
	employer.Post("/schedules/:id/cancel", s.handleEmployerCancel)

	candidate := s.http.Group("/candidate")
	candidate.Get("/offers", s.handleListOffers)
	candidate.Get("/schedules/:id", s.handleGetOffer)
	candidate.Post("/schedules/:id/pick", s.handlePickSlot)
	candidate.Post("/schedules/:id/cancel", s.handleCandidateCancel)
}

// fail maps the engine's error taxonomy onto status codes. Conflict
// bodies keep the wrapped detail so a client can tell "slot taken,
// refresh your view" from "nothing to do here anymore".
func (s *server) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, interviews.ErrValidation),
		errors.Is(err, availability.ErrInvalidProfile):
		return s.sendError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, interviews.ErrNotFound):
		return s.sendError(c, http.StatusNotFound, "not found")

	case errors.Is(err, interviews.ErrConflict):
		return s.sendError(c, http.StatusConflict, err.Error())

	case errors.Is(err, interviews.ErrCalendarUnavailable):
		return s.sendError(c, http.StatusServiceUnavailable, "calendar unavailable, retry later")

	default:
		return err
	}
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}
