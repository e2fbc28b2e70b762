package devserver

import (
	"vitalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// resolveCategory maps a route parameter to a category ID. Clients address
// categories by ID or by name interchangeably.
func (s *Server) resolveCategory(c *fiber.Ctx) string {
	param := c.Params("category")
	cats, err := s.client.GetCustomCategories(c.Context(), apiToken(c))
	if err != nil {
		return param
	}
	for _, cat := range cats {
		if cat.ID == param || cat.CategoryName == param {
			return cat.ID
		}
	}
	return param
}

// GetCustomCategories handles GET /category/list.
func (s *Server) GetCustomCategories(c *fiber.Ctx) error {
	cats, err := s.client.GetCustomCategories(c.Context(), apiToken(c))
	if err != nil {
		return respondError(c, err)
	}
	if cats == nil {
		cats = []models.Category{}
	}
	return c.JSON(cats)
}

// CreateCustomCategory handles POST /category/create. Creating an existing
// name returns the existing category unchanged.
func (s *Server) CreateCustomCategory(c *fiber.Ctx) error {
	var req struct {
		CategoryName string `json:"categoryName"`
	}
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	cat, err := s.client.CreateCustomCategory(c.Context(), apiToken(c), req.CategoryName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// GetCustomData handles GET /category/:category/list.
func (s *Server) GetCustomData(c *fiber.Ctx) error {
	items, err := s.client.GetCustomData(c.Context(), apiToken(c), s.resolveCategory(c))
	if err != nil {
		return respondError(c, err)
	}
	if items == nil {
		items = []models.CustomItem{}
	}
	return c.JSON(items)
}

// AddCustomItem handles POST /category/:category/add.
func (s *Server) AddCustomItem(c *fiber.Ctx) error {
	var req struct {
		Datetime string `json:"datetime"`
		Note     string `json:"note"`
	}
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := s.client.AddCustomItem(c.Context(), apiToken(c), s.resolveCategory(c), req.Datetime, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateCustomItem handles PATCH /category/:category/:item.
func (s *Server) UpdateCustomItem(c *fiber.Ctx) error {
	var upd models.CustomItemUpdate
	if err := parseBody(c, &upd); err != nil {
		return respondError(c, err)
	}

	item, err := s.client.UpdateCustomItem(c.Context(), apiToken(c), s.resolveCategory(c), c.Params("item"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DeleteCustomItem handles DELETE /category/:category/:item.
func (s *Server) DeleteCustomItem(c *fiber.Ctx) error {
	if err := s.client.DeleteCustomItem(c.Context(), apiToken(c), s.resolveCategory(c), c.Params("item")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
