package api

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewd/internal/availability"
	"github.com/nikmy/interviewd/pkg/errors"
)

const (
	headerEmployerID  = "X-Employer-ID"
	headerCandidateID = "X-Candidate-ID"
)

type slotPayload struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type availabilityPayload struct {
	WorkingDays         []int  `json:"working_days"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	Timezone            string `json:"timezone"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	BufferMinutes       int    `json:"buffer_minutes"`
}

func (s *server) handleSetAvailability(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	var body availabilityPayload
	if err := c.BodyParser(&body); err != nil {
		return s.sendError(c, http.StatusBadRequest, "malformed request body")
	}

	profile := &availability.Profile{
		EmployerID:          employerID,
		WorkingDays:         body.WorkingDays,
		StartTime:           body.StartTime,
		EndTime:             body.EndTime,
		Timezone:            body.Timezone,
		SlotDurationMinutes: body.SlotDurationMinutes,
		BufferMinutes:       body.BufferMinutes,
	}

	err := s.profiles.Set(c.Context(), profile)
	if err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleGetAvailability(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	profile, err := s.profiles.Get(c.Context(), employerID)
	if err != nil {
		return s.fail(c, err)
	}
	if profile == nil {
		return s.sendError(c, http.StatusNotFound, "no availability profile")
	}

	return c.JSON(profile)
}

func (s *server) handleListSlots(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	err := s.service.CheckApplication(c.Context(), employerID, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var from time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return s.sendError(c, http.StatusBadRequest, "bad 'from' timestamp")
		}
		from = parsed
	}

	slots, err := s.generator.Generate(c.Context(), employerID, from)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]slotPayload, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slotPayload{Start: slot[0], End: slot[1]})
	}

	return c.JSON(map[string]any{"slots": out})
}

func (s *server) handleSendOffer(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	var body struct {
		Slots []slotPayload `json:"slots"`
	}
	if err := c.BodyParser(&body); err != nil {
		return s.sendError(c, http.StatusBadRequest, "malformed request body")
	}

	slots := make([][2]time.Time, 0, len(body.Slots))
	for _, slot := range body.Slots {
		slots = append(slots, [2]time.Time{slot.Start, slot.End})
	}

	schedule, err := s.service.SendOffer(c.Context(), employerID, c.Params("id"), slots)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(schedule)
}

func (s *server) handleEmployerConfirm(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	schedule, err := s.service.EmployerConfirm(c.Context(), employerID, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(schedule)
}

func (s *server) handleEmployerSchedules(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	from, to, err := timeWindow(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	schedules, err := s.service.ListForEmployer(c.Context(), employerID, from, to)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(map[string]any{"schedules": schedules})
}

func (s *server) handleEmployerCancel(c *fiber.Ctx) error {
	employerID, ok := s.identity(c, headerEmployerID)
	if !ok {
		return nil
	}

	err := s.service.CancelByEmployer(c.Context(), employerID, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleListOffers(c *fiber.Ctx) error {
	candidateID, ok := s.identity(c, headerCandidateID)
	if !ok {
		return nil
	}

	schedules, err := s.service.ListOffers(c.Context(), candidateID)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(map[string]any{"schedules": schedules})
}

func (s *server) handleGetOffer(c *fiber.Ctx) error {
	candidateID, ok := s.identity(c, headerCandidateID)
	if !ok {
		return nil
	}

	schedule, slots, err := s.service.GetForCandidate(c.Context(), candidateID, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(map[string]any{"schedule": schedule, "slots": slots})
}

func (s *server) handlePickSlot(c *fiber.Ctx) error {
	candidateID, ok := s.identity(c, headerCandidateID)
	if !ok {
		return nil
	}

	var body struct {
		SlotID string `json:"slot_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.SlotID == "" {
		return s.sendError(c, http.StatusBadRequest, "slot_id is required")
	}

	schedule, err := s.service.PickSlot(c.Context(), candidateID, c.Params("id"), body.SlotID)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(schedule)
}

func (s *server) handleCandidateCancel(c *fiber.Ctx) error {
	candidateID, ok := s.identity(c, headerCandidateID)
	if !ok {
		return nil
	}

	err := s.service.CancelByCandidate(c.Context(), candidateID, c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// identity reads the caller's id from a gateway-injected header. The
// gateway authenticates; this service only scopes data by the id.
func (s *server) identity(c *fiber.Ctx, header string) (string, bool) {
	id := c.Get(header)
	if id == "" {
		_ = s.sendError(c, http.StatusBadRequest, header+" header is required")
		return "", false
	}
	return id, true
}

func timeWindow(c *fiber.Ctx) (from, to time.Time, err error) {
	from, to = time.Now().UTC(), time.Now().UTC().AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return from, to, errors.Error("bad 'from' timestamp")
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return from, to, errors.Error("bad 'to' timestamp")
		}
	}
	return from, to, nil
}
