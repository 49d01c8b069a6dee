package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// TrackerController serves the document and every entity mutation. All
// writes funnel through the store's Apply gate; the controller never
// hand-constructs a cross-reference.
type TrackerController struct {
	store  *store.Store
	logger *log.Logger
	hub    *DocumentHub
}

func NewTrackerController(s *store.Store, hub *DocumentHub, logger *log.Logger) *TrackerController {
	return &TrackerController{
		store:  s,
		logger: logger,
		hub:    hub,
	}
}

// GetDocument returns the whole normalized document.
func (tc *TrackerController) GetDocument(c *fiber.Ctx) error {
	return c.JSON(utils.SuccessResponse(tc.store.Load()))
}

// apply runs a mutation, notifies WebSocket subscribers and answers with
// the full updated document so the client can re-render from it.
func (tc *TrackerController) apply(c *fiber.Ctx, fn func(*models.Document) error) error {
	doc, err := tc.store.Apply(fn)
	if err == store.ErrNotFound {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Record not found", nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update tracker", err)
	}
	tc.hub.NotifyUpdated(doc.Meta.UpdatedAt)
	return c.JSON(utils.SuccessResponse(doc))
}
