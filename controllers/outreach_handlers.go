package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// CreateOutreach adds a PI contact, optionally pre-linked to one project.
func (tc *TrackerController) CreateOutreach(c *fiber.Ctx) error {
	var input struct {
		PIName      string   `json:"piName" validate:"required,max=200"`
		Institution string   `json:"institution" validate:"omitempty,max=300"`
		Channel     string   `json:"channel"`
		Directions  []string `json:"directions"`
		ProjectID   string   `json:"projectId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		store.CreateOutreach(doc, models.Outreach{
			PIName:      input.PIName,
			Institution: input.Institution,
			Channel:     input.Channel,
			Directions:  input.Directions,
		}, input.ProjectID)
		return nil
	})
}

// UpdateOutreach applies a partial patch to one contact.
func (tc *TrackerController) UpdateOutreach(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch store.OutreachPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		_, err := store.UpdateOutreach(doc, id, patch)
		return err
	})
}

// DeleteOutreach removes a contact; its id is pruned from every project.
func (tc *TrackerController) DeleteOutreach(c *fiber.Ctx) error {
	id := c.Params("id")
	return tc.apply(c, func(doc *models.Document) error {
		return store.DeleteOutreach(doc, id)
	})
}

// LinkOutreach connects a contact to a project.
func (tc *TrackerController) LinkOutreach(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		ProjectID string `json:"projectId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		return store.LinkOutreach(doc, id, input.ProjectID)
	})
}

// UnlinkOutreach removes the contact<->project link from both sides.
func (tc *TrackerController) UnlinkOutreach(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		ProjectID string `json:"projectId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	return tc.apply(c, func(doc *models.Document) error {
		return store.UnlinkOutreach(doc, id, input.ProjectID)
	})
}
