package devserver

import (
	"vitalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /login.
func (s *Server) Login(c *fiber.Ctx) error {
	var creds models.Credentials
	if err := parseBody(c, &creds); err != nil {
		return respondError(c, err)
	}

	resp, err := s.client.Login(c.Context(), creds)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.issueToken(resp.Token)
	if err != nil {
		return respondError(c, models.NewAPIError("token signing failed", err))
	}
	return c.JSON(models.AuthResponse{Token: token})
}

// Register handles POST /register.
func (s *Server) Register(c *fiber.Ctx) error {
	var in models.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}

	resp, err := s.client.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.issueToken(resp.Token)
	if err != nil {
		return respondError(c, models.NewAPIError("token signing failed", err))
	}
	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{Token: token})
}

// GetProfile handles GET /user/profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.client.GetProfile(c.Context(), apiToken(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetBMI handles GET /user/bmi.
func (s *Server) GetBMI(c *fiber.Ctx) error {
	bmi, err := s.client.GetBMI(c.Context(), apiToken(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"bmi": bmi})
}
