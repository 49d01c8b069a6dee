package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// ExportJSON downloads the whole document, pretty-printed.
func (tc *TrackerController) ExportJSON(c *fiber.Ctx) error {
	data, err := store.ExportJSON(tc.store.Load())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export document", err)
	}
	c.Set("Content-Type", "application/json")
	c.Set("Content-Disposition", "attachment; filename=tracker_export_"+time.Now().Format("20060102")+".json")
	return c.Send(data)
}

// ExportCSV downloads the project collection as CSV.
func (tc *TrackerController) ExportCSV(c *fiber.Ctx) error {
	data, err := store.ExportProjectsCSV(tc.store.Load())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export projects", err)
	}
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=projects_export_"+time.Now().Format("20060102")+".csv")
	return c.Send(data)
}

// ImportDocument replaces the tracker state with an uploaded JSON
// document. A payload missing any of the four collections is rejected
// with no state change.
func (tc *TrackerController) ImportDocument(c *fiber.Ctx) error {
	doc, err := tc.store.ImportJSON(c.Body())
	if err == store.ErrMissingCollections {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Import rejected: the file is missing one of projects/outreach/materials/decisions", nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Import rejected: not a valid tracker file", err)
	}
	tc.hub.NotifyUpdated(doc.Meta.UpdatedAt)
	return c.JSON(utils.SuccessResponse(doc))
}
