package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// CreateProject adds a new application candidacy, prepended to the list.
func (tc *TrackerController) CreateProject(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required,max=300"`
		Institution string `json:"institution" validate:"omitempty,max=300"`
		Region      string `json:"region"`
		Type        string `json:"type"`
		Link        string `json:"link"`
		Lab         string `json:"lab"`
		Deadline    string `json:"deadline"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		store.CreateProject(doc, models.Project{
			Name:        input.Name,
			Institution: input.Institution,
			Region:      input.Region,
			Type:        input.Type,
			Link:        input.Link,
			Lab:         input.Lab,
			Deadline:    input.Deadline,
		})
		return nil
	})
}

// UpdateProject applies a partial patch to one project.
func (tc *TrackerController) UpdateProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch store.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		_, err := store.UpdateProject(doc, id, patch)
		return err
	})
}

// DeleteProject removes a project with its cascade: decisions deleted,
// outreach links pruned, materials reset to unassigned.
func (tc *TrackerController) DeleteProject(c *fiber.Ctx) error {
	id := c.Params("id")
	return tc.apply(c, func(doc *models.Document) error {
		return store.DeleteProject(doc, id)
	})
}
