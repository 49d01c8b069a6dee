package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// EnsureDecision returns the project's decision card, creating it lazily
// on first request.
func (tc *TrackerController) EnsureDecision(c *fiber.Ctx) error {
	projectID := c.Params("id")
	return tc.apply(c, func(doc *models.Document) error {
		_, err := store.EnsureDecision(doc, projectID)
		return err
	})
}

// UpdateDecision applies a partial patch to one decision card.
func (tc *TrackerController) UpdateDecision(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch store.DecisionPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		_, err := store.UpdateDecision(doc, id, patch)
		return err
	})
}
