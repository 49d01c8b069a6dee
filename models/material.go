package models

// MaterialType classifies an application deliverable.
type MaterialType string

const (
	MaterialCV            MaterialType = "CV"
	MaterialResearchStmt  MaterialType = "Research Statement"
	MaterialSOP           MaterialType = "SOP"
	MaterialRecLetter     MaterialType = "Recommendation Letter"
	MaterialTranscript    MaterialType = "Transcript"
	MaterialWritingSample MaterialType = "Writing Sample"
	MaterialLanguage      MaterialType = "Language"
	MaterialPortfolio     MaterialType = "Portfolio"
	MaterialOther         MaterialType = "Other"
)

// MaterialStatus is the five-stage workflow state of a material task.
type MaterialStatus string

const (
	MaterialNotStarted MaterialStatus = "Not Started"
	MaterialDrafting   MaterialStatus = "Drafting"
	MaterialReviewing  MaterialStatus = "Reviewing"
	MaterialFinalized  MaterialStatus = "Finalized"
	MaterialSubmitted  MaterialStatus = "Submitted"
)

// MaterialTask is a unit of application-deliverable work (CV, statement,
// letter, ...). Target is its single optional owning-project reference;
// an unassigned task is reusable across projects.
type MaterialTask struct {
	ID   string       `json:"id"`
	Code string       `json:"code"`
	Type MaterialType `json:"type"`

	Target TargetRef `json:"projectId"`

	Status     MaterialStatus `json:"status"`
	Version    string         `json:"version"`
	DueDate    string         `json:"dueDate"`
	Dependency string         `json:"dependency"`
	Link       string         `json:"link"`
	Notes      string         `json:"notes"`
}
