package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// CreateMaterial adds a deliverable task, optionally already targeting a
// project.
func (tc *TrackerController) CreateMaterial(c *fiber.Ctx) error {
	var input struct {
		Type      models.MaterialType `json:"type"`
		ProjectID string              `json:"projectId"`
		DueDate   string              `json:"dueDate"`
		Notes     string              `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		store.CreateMaterial(doc, models.MaterialTask{
			Type:    input.Type,
			Target:  models.ProjectRef(input.ProjectID),
			DueDate: input.DueDate,
			Notes:   input.Notes,
		})
		return nil
	})
}

// UpdateMaterial applies a partial patch; a target change migrates the
// task between projects in one step.
func (tc *TrackerController) UpdateMaterial(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch store.MaterialPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		_, err := store.UpdateMaterial(doc, id, patch)
		return err
	})
}

// DeleteMaterial removes a task and prunes it from every project list.
func (tc *TrackerController) DeleteMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	return tc.apply(c, func(doc *models.Document) error {
		return store.DeleteMaterial(doc, id)
	})
}
