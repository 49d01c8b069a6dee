package models

// ProjectStatus is the application pipeline stage of a project.
type ProjectStatus string

const (
	StatusProspecting  ProjectStatus = "Prospecting"
	StatusNeedOutreach ProjectStatus = "Need Outreach"
	StatusPreparing    ProjectStatus = "Preparing"
	StatusSubmitted    ProjectStatus = "Submitted"
	StatusInterview    ProjectStatus = "Interview"
	StatusOffer        ProjectStatus = "Offer"
	StatusRejected     ProjectStatus = "Rejected"
	StatusClosed       ProjectStatus = "Closed"
)

// Priority ranks how much a record matters right now.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// DecisionChoice is the apply/skip verdict on a project.
type DecisionChoice string

const (
	DecideApply DecisionChoice = "Apply"
	DecideMaybe DecisionChoice = "Maybe"
	DecideNo    DecisionChoice = "No"
)

// PortalStatus tracks whether the application portal accepts submissions.
type PortalStatus string

const (
	PortalNotOpen PortalStatus = "Not Open"
	PortalOpen    PortalStatus = "Open"
	PortalClosed  PortalStatus = "Closed"
)

// NeedsOutreach records whether contacting the PI is required first.
type NeedsOutreach string

const (
	OutreachYes      NeedsOutreach = "Yes"
	OutreachNo       NeedsOutreach = "No"
	OutreachOptional NeedsOutreach = "Optional"
)

// Project is one summer-research-program application candidacy.
//
// OutreachIDs and MaterialTaskIDs are back-reference collections; they are
// rewritten by the normalization pass and must never be edited directly by
// callers outside the store.
type Project struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Region      string `json:"region"`
	Type        string `json:"type"`
	Link        string `json:"link"`
	Lab         string `json:"lab"`
	Eligibility string `json:"eligibility"`
	Period      string `json:"period"`
	Round       string `json:"round"`

	Status        ProjectStatus  `json:"status"`
	Priority      Priority       `json:"priority"`
	Decision      DecisionChoice `json:"decision"`
	PortalStatus  PortalStatus   `json:"portalStatus"`
	NeedsOutreach NeedsOutreach  `json:"needsOutreach"`

	// Scored attributes, clamped to [0,10] at one decimal.
	Fit  float64 `json:"fit"`
	Risk float64 `json:"risk"`
	ROI  float64 `json:"roi"`

	Keywords          []string `json:"keywords"`
	Funding           []string `json:"funding"`
	RequiredMaterials []string `json:"requiredMaterials"`

	// Date fields are opaque date-strings; the store never parses them.
	Deadline       string `json:"deadline"`
	NextAction     string `json:"nextAction"`
	NextActionDate string `json:"nextActionDate"`
	Notes          string `json:"notes"`

	OutreachIDs     []string `json:"outreachIds"`
	MaterialTaskIDs []string `json:"materialTaskIds"`
}
