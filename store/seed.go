package store

import (
	"time"

	"github.com/EasonYD88/SURF-application-website/models"
)

// Seed builds the first-run document: one example project, one outreach
// contact, two material tasks (one unassigned, one linked) and one
// decision, fully cross-linked. It is also the fallback whenever loading
// cannot trust the persisted text. Ids and timestamps are fresh on every
// call; the shape is fixed.
func Seed() *models.Document {
	now := time.Now()

	project := models.Project{
		ID:            models.NewID(),
		Code:          models.NewCode("P"),
		Name:          "EPFL Excellence Research Internship",
		Institution:   "EPFL",
		Region:        "Switzerland",
		Type:          "Summer research program",
		Link:          "https://www.epfl.ch/education/studies/en/financing-study/excellence-fellowships/",
		Lab:           "Prof. A. Martin / Systems Lab",
		Eligibility:   "3rd-year undergraduates, GPA above 85%",
		Period:        "July - September",
		Round:         "2026",
		Status:        models.StatusProspecting,
		Priority:      models.PriorityHigh,
		Decision:      models.DecideApply,
		PortalStatus:  models.PortalNotOpen,
		NeedsOutreach: models.OutreachYes,
		Fit:           8.5,
		Risk:          4.0,
		ROI:           8.0,
		Keywords:      []string{"distributed systems", "storage"},
		Funding:       []string{"stipend", "housing"},
		RequiredMaterials: []string{
			"CV", "Transcript", "Research Statement",
		},
		Deadline:       "2026-01-15",
		NextAction:     "Draft first-contact email to the PI",
		NextActionDate: "2025-11-01",
		Notes:          "Example entry - edit or delete it.",
	}

	contact := models.Outreach{
		ID:               models.NewID(),
		Code:             models.NewCode("O"),
		PIName:           "Prof. A. Martin",
		Institution:      "EPFL",
		Channel:          "Email",
		Directions:       []string{"distributed systems", "consensus"},
		FirstContactDate: "",
		ReplyStatus:      models.ReplyNone,
		Stage:            models.StageDrafting,
		NextFollowUpDate: "",
		NextAction:       "Finish the intro draft",
		ProjectIDs:       []string{project.ID},
	}
	project.OutreachIDs = []string{contact.ID}

	cv := models.MaterialTask{
		ID:     models.NewID(),
		Code:   models.NewCode("M"),
		Type:   models.MaterialCV,
		Target: models.Unassigned(),
		Status: models.MaterialDrafting,
		Notes:  "Shared across applications",
	}
	statement := models.MaterialTask{
		ID:      models.NewID(),
		Code:    models.NewCode("M"),
		Type:    models.MaterialResearchStmt,
		Target:  models.ProjectRef(project.ID),
		Status:  models.MaterialNotStarted,
		DueDate: "2026-01-10",
	}
	project.MaterialTaskIDs = []string{statement.ID}

	decision := models.Decision{
		ID:         models.NewID(),
		ProjectID:  project.ID,
		Conclusion: models.DecideApply,
		Priority:   models.PriorityHigh,
		WhyApply:   "Strong systems group, fully funded.",
		Strategy:   "Contact the PI before the portal opens.",
		PostResult: models.ResultNone,
	}

	return &models.Document{
		Projects:  []models.Project{project},
		Outreach:  []models.Outreach{contact},
		Materials: []models.MaterialTask{cv, statement},
		Decisions: []models.Decision{decision},
		Meta: models.Meta{
			Version:   models.SchemaVersion,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
