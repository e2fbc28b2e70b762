package devserver

import (
	"vitalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddWater handles POST /waters.
func (s *Server) AddWater(c *fiber.Ctx) error {
	var req struct {
		Datetime string  `json:"datetime"`
		AmountMl float64 `json:"amountMl"`
	}
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	rec, err := s.client.AddWater(c.Context(), apiToken(c), req.Datetime, req.AmountMl)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// GetAllWater handles GET /waters.
func (s *Server) GetAllWater(c *fiber.Ctx) error {
	recs, err := s.client.GetAllWater(c.Context(), apiToken(c))
	if err != nil {
		return respondError(c, err)
	}
	if recs == nil {
		recs = []models.WaterRecord{}
	}
	return c.JSON(recs)
}

// UpdateWater handles PATCH /waters/:id.
func (s *Server) UpdateWater(c *fiber.Ctx) error {
	var upd models.WaterUpdate
	if err := parseBody(c, &upd); err != nil {
		return respondError(c, err)
	}

	rec, err := s.client.UpdateWater(c.Context(), apiToken(c), c.Params("id"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// DeleteWater handles DELETE /waters/:id.
func (s *Server) DeleteWater(c *fiber.Ctx) error {
	if err := s.client.DeleteWater(c.Context(), apiToken(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddSleep handles POST /sleeps.
func (s *Server) AddSleep(c *fiber.Ctx) error {
	var req struct {
		Datetime string  `json:"datetime"`
		Hours    float64 `json:"hours"`
	}
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	rec, err := s.client.AddSleep(c.Context(), apiToken(c), req.Datetime, req.Hours)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// GetAllSleep handles GET /sleeps.
func (s *Server) GetAllSleep(c *fiber.Ctx) error {
	recs, err := s.client.GetAllSleep(c.Context(), apiToken(c))
	if err != nil {
		return respondError(c, err)
	}
	if recs == nil {
		recs = []models.SleepRecord{}
	}
	return c.JSON(recs)
}

// UpdateSleep handles PATCH /sleeps/:id.
func (s *Server) UpdateSleep(c *fiber.Ctx) error {
	var upd models.SleepUpdate
	if err := parseBody(c, &upd); err != nil {
		return respondError(c, err)
	}

	rec, err := s.client.UpdateSleep(c.Context(), apiToken(c), c.Params("id"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// AddActivity handles POST /activities.
func (s *Server) AddActivity(c *fiber.Ctx) error {
	var req struct {
		Datetime  string  `json:"datetime"`
		Minutes   float64 `json:"minutes"`
		Intensity string  `json:"intensity"`
	}
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	rec, err := s.client.AddActivity(c.Context(), apiToken(c), req.Datetime, req.Minutes, req.Intensity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// GetAllActivity handles GET /activities. A sortBy=duration query reorders
// the collection before listing it.
func (s *Server) GetAllActivity(c *fiber.Ctx) error {
	token := apiToken(c)
	if c.Query("sortBy") == "duration" {
		if err := s.client.SortActivityByDuration(c.Context(), token); err != nil {
			return respondError(c, err)
		}
	}

	recs, err := s.client.GetAllActivity(c.Context(), token)
	if err != nil {
		return respondError(c, err)
	}
	if recs == nil {
		recs = []models.ActivityRecord{}
	}
	return c.JSON(recs)
}

// UpdateActivity handles PATCH /activities/:id.
func (s *Server) UpdateActivity(c *fiber.Ctx) error {
	var upd models.ActivityUpdate
	if err := parseBody(c, &upd); err != nil {
		return respondError(c, err)
	}

	rec, err := s.client.UpdateActivity(c.Context(), apiToken(c), c.Params("id"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// DeleteActivity handles DELETE /activities/:id.
func (s *Server) DeleteActivity(c *fiber.Ctx) error {
	if err := s.client.DeleteActivity(c.Context(), apiToken(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
