package store

import (
	"errors"

	"github.com/EasonYD88/SURF-application-website/models"
)

// ErrNotFound marks a mutation aimed at an id the document does not hold.
var ErrNotFound = errors.New("record not found")

// Every mutation below is a pure, synchronous transform of the whole
// document. Callers run them through Store.Apply so the result is
// normalized and persisted in one step.

// CreateProject fills in identity fields, clamps scores and prepends the
// project to the collection (newest first, matching the client list).
func CreateProject(doc *models.Document, p models.Project) models.Project {
	if p.ID == "" {
		p.ID = models.NewID()
	}
	if p.Code == "" {
		p.Code = models.NewCode("P")
	}
	if p.Status == "" {
		p.Status = models.StatusProspecting
	}
	if p.Priority == "" {
		p.Priority = models.PriorityMedium
	}
	p.Fit = models.ClampScore(p.Fit)
	p.Risk = models.ClampScore(p.Risk)
	p.ROI = models.ClampScore(p.ROI)
	doc.Projects = append([]models.Project{p}, doc.Projects...)
	return p
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name          *string                `json:"name" validate:"omitempty,max=300"`
	Institution   *string                `json:"institution" validate:"omitempty,max=300"`
	Region        *string                `json:"region"`
	Type          *string                `json:"type"`
	Link          *string                `json:"link"`
	Lab           *string                `json:"lab"`
	Eligibility   *string                `json:"eligibility"`
	Period        *string                `json:"period"`
	Round         *string                `json:"round"`
	Status        *models.ProjectStatus  `json:"status"`
	Priority      *models.Priority       `json:"priority"`
	Decision      *models.DecisionChoice `json:"decision"`
	PortalStatus  *models.PortalStatus   `json:"portalStatus"`
	NeedsOutreach *models.NeedsOutreach  `json:"needsOutreach"`
	Fit           *float64               `json:"fit"`
	Risk          *float64               `json:"risk"`
	ROI           *float64               `json:"roi"`
	Keywords      *[]string              `json:"keywords"`
	Funding       *[]string              `json:"funding"`
	RequiredMats  *[]string              `json:"requiredMaterials"`
	Deadline      *string                `json:"deadline"`
	NextAction    *string                `json:"nextAction"`
	NextActionAt  *string                `json:"nextActionDate"`
	Notes         *string                `json:"notes"`
}

func UpdateProject(doc *models.Document, id string, patch ProjectPatch) (*models.Project, error) {
	p := doc.FindProject(id)
	if p == nil {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Institution != nil {
		p.Institution = *patch.Institution
	}
	if patch.Region != nil {
		p.Region = *patch.Region
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Link != nil {
		p.Link = *patch.Link
	}
	if patch.Lab != nil {
		p.Lab = *patch.Lab
	}
	if patch.Eligibility != nil {
		p.Eligibility = *patch.Eligibility
	}
	if patch.Period != nil {
		p.Period = *patch.Period
	}
	if patch.Round != nil {
		p.Round = *patch.Round
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.Decision != nil {
		p.Decision = *patch.Decision
	}
	if patch.PortalStatus != nil {
		p.PortalStatus = *patch.PortalStatus
	}
	if patch.NeedsOutreach != nil {
		p.NeedsOutreach = *patch.NeedsOutreach
	}
	if patch.Fit != nil {
		p.Fit = models.ClampScore(*patch.Fit)
	}
	if patch.Risk != nil {
		p.Risk = models.ClampScore(*patch.Risk)
	}
	if patch.ROI != nil {
		p.ROI = models.ClampScore(*patch.ROI)
	}
	if patch.Keywords != nil {
		p.Keywords = *patch.Keywords
	}
	if patch.Funding != nil {
		p.Funding = *patch.Funding
	}
	if patch.RequiredMats != nil {
		p.RequiredMaterials = *patch.RequiredMats
	}
	if patch.Deadline != nil {
		p.Deadline = *patch.Deadline
	}
	if patch.NextAction != nil {
		p.NextAction = *patch.NextAction
	}
	if patch.NextActionAt != nil {
		p.NextActionDate = *patch.NextActionAt
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	return p, nil
}

// DeleteProject removes the project and cascades: its decisions are
// deleted, its id is pruned from every outreach, and materials that
// targeted it are reset to unassigned (never deleted).
func DeleteProject(doc *models.Document, id string) error {
	idx := -1
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	doc.Projects = append(doc.Projects[:idx], doc.Projects[idx+1:]...)

	kept := doc.Decisions[:0]
	for _, d := range doc.Decisions {
		if d.ProjectID != id {
			kept = append(kept, d)
		}
	}
	doc.Decisions = kept

	for i := range doc.Outreach {
		doc.Outreach[i].ProjectIDs = removeID(doc.Outreach[i].ProjectIDs, id)
	}
	for i := range doc.Materials {
		if target, ok := doc.Materials[i].Target.ProjectID(); ok && target == id {
			doc.Materials[i].Target = models.Unassigned()
			stripMaterialFromProjects(doc, doc.Materials[i].ID)
		}
	}
	return nil
}

// CreateOutreach prepends a new contact, optionally pre-linked to one
// project; normalization mirrors the link onto the project side.
func CreateOutreach(doc *models.Document, o models.Outreach, projectID string) models.Outreach {
	if o.ID == "" {
		o.ID = models.NewID()
	}
	if o.Code == "" {
		o.Code = models.NewCode("O")
	}
	if o.ReplyStatus == "" {
		o.ReplyStatus = models.ReplyNone
	}
	if o.Stage == "" {
		o.Stage = models.StageDrafting
	}
	if projectID != "" {
		o.ProjectIDs = append(o.ProjectIDs, projectID)
	}
	doc.Outreach = append([]models.Outreach{o}, doc.Outreach...)
	return o
}

// OutreachPatch is a partial update; nil fields are left untouched.
type OutreachPatch struct {
	PIName           *string               `json:"piName" validate:"omitempty,max=200"`
	Institution      *string               `json:"institution" validate:"omitempty,max=300"`
	Channel          *string               `json:"channel"`
	Directions       *[]string             `json:"directions"`
	FirstContactDate *string               `json:"firstContactDate"`
	ReplyStatus      *models.ReplyStatus   `json:"replyStatus"`
	ReplyDate        *string               `json:"replyDate"`
	ReplySummary     *string               `json:"replySummary"`
	ThreadID         *string               `json:"threadId"`
	Stage            *models.OutreachStage `json:"stage"`
	NextFollowUpDate *string               `json:"nextFollowUpDate"`
	NextAction       *string               `json:"nextAction"`
	Notes            *string               `json:"notes"`
}

func UpdateOutreach(doc *models.Document, id string, patch OutreachPatch) (*models.Outreach, error) {
	o := doc.FindOutreach(id)
	if o == nil {
		return nil, ErrNotFound
	}
	if patch.PIName != nil {
		o.PIName = *patch.PIName
	}
	if patch.Institution != nil {
		o.Institution = *patch.Institution
	}
	if patch.Channel != nil {
		o.Channel = *patch.Channel
	}
	if patch.Directions != nil {
		o.Directions = *patch.Directions
	}
	if patch.FirstContactDate != nil {
		o.FirstContactDate = *patch.FirstContactDate
	}
	if patch.ReplyStatus != nil {
		o.ReplyStatus = *patch.ReplyStatus
	}
	if patch.ReplyDate != nil {
		o.ReplyDate = *patch.ReplyDate
	}
	if patch.ReplySummary != nil {
		o.ReplySummary = *patch.ReplySummary
	}
	if patch.ThreadID != nil {
		o.ThreadID = *patch.ThreadID
	}
	if patch.Stage != nil {
		o.Stage = *patch.Stage
	}
	if patch.NextFollowUpDate != nil {
		o.NextFollowUpDate = *patch.NextFollowUpDate
	}
	if patch.NextAction != nil {
		o.NextAction = *patch.NextAction
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	return o, nil
}

// DeleteOutreach removes the contact and prunes its id from every
// project; projects themselves are untouched.
func DeleteOutreach(doc *models.Document, id string) error {
	idx := -1
	for i := range doc.Outreach {
		if doc.Outreach[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	doc.Outreach = append(doc.Outreach[:idx], doc.Outreach[idx+1:]...)
	for i := range doc.Projects {
		doc.Projects[i].OutreachIDs = removeID(doc.Projects[i].OutreachIDs, id)
	}
	return nil
}

// LinkOutreach records the outreach<->project link on the outreach side;
// normalization mirrors it.
func LinkOutreach(doc *models.Document, outreachID, projectID string) error {
	o := doc.FindOutreach(outreachID)
	if o == nil || doc.FindProject(projectID) == nil {
		return ErrNotFound
	}
	if !containsID(o.ProjectIDs, projectID) {
		o.ProjectIDs = append(o.ProjectIDs, projectID)
	}
	return nil
}

// UnlinkOutreach removes the link from both sides.
func UnlinkOutreach(doc *models.Document, outreachID, projectID string) error {
	o := doc.FindOutreach(outreachID)
	p := doc.FindProject(projectID)
	if o == nil || p == nil {
		return ErrNotFound
	}
	o.ProjectIDs = removeID(o.ProjectIDs, projectID)
	p.OutreachIDs = removeID(p.OutreachIDs, outreachID)
	return nil
}

// CreateMaterial prepends a new task, optionally already targeting a
// project.
func CreateMaterial(doc *models.Document, m models.MaterialTask) models.MaterialTask {
	if m.ID == "" {
		m.ID = models.NewID()
	}
	if m.Code == "" {
		m.Code = models.NewCode("M")
	}
	if m.Type == "" {
		m.Type = models.MaterialOther
	}
	if m.Status == "" {
		m.Status = models.MaterialNotStarted
	}
	doc.Materials = append([]models.MaterialTask{m}, doc.Materials...)
	return m
}

// MaterialPatch is a partial update; nil fields are left untouched.
// Target, when present, reassigns the task: "unassigned" or "" detaches
// it, anything else is a project id.
type MaterialPatch struct {
	Type       *models.MaterialType   `json:"type"`
	Target     *string                `json:"projectId"`
	Status     *models.MaterialStatus `json:"status"`
	Version    *string                `json:"version"`
	DueDate    *string                `json:"dueDate"`
	Dependency *string                `json:"dependency"`
	Link       *string                `json:"link"`
	Notes      *string                `json:"notes"`
}

func UpdateMaterial(doc *models.Document, id string, patch MaterialPatch) (*models.MaterialTask, error) {
	m := doc.FindMaterial(id)
	if m == nil {
		return nil, ErrNotFound
	}
	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Target != nil {
		SetMaterialTarget(doc, m, models.ProjectRef(*patch.Target))
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Version != nil {
		m.Version = *patch.Version
	}
	if patch.DueDate != nil {
		m.DueDate = *patch.DueDate
	}
	if patch.Dependency != nil {
		m.Dependency = *patch.Dependency
	}
	if patch.Link != nil {
		m.Link = *patch.Link
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	return m, nil
}

// SetMaterialTarget reassigns a task: its id leaves every project that
// held it and normalization re-adds it to the new target only. Pure
// reassignment, never duplication.
func SetMaterialTarget(doc *models.Document, m *models.MaterialTask, target models.TargetRef) {
	stripMaterialFromProjects(doc, m.ID)
	m.Target = target
}

// DeleteMaterial removes the task and prunes its id from whichever
// projects hold it.
func DeleteMaterial(doc *models.Document, id string) error {
	idx := -1
	for i := range doc.Materials {
		if doc.Materials[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	doc.Materials = append(doc.Materials[:idx], doc.Materials[idx+1:]...)
	stripMaterialFromProjects(doc, id)
	return nil
}

// EnsureDecision returns the project's decision card, creating it on
// first request with the project's current verdict and priority mirrored
// in.
func EnsureDecision(doc *models.Document, projectID string) (*models.Decision, error) {
	p := doc.FindProject(projectID)
	if p == nil {
		return nil, ErrNotFound
	}
	for i := range doc.Decisions {
		if doc.Decisions[i].ProjectID == projectID {
			return &doc.Decisions[i], nil
		}
	}
	doc.Decisions = append(doc.Decisions, models.Decision{
		ID:         models.NewID(),
		ProjectID:  projectID,
		Conclusion: p.Decision,
		Priority:   p.Priority,
		PostResult: models.ResultNone,
	})
	return &doc.Decisions[len(doc.Decisions)-1], nil
}

// DecisionPatch is a partial update; nil fields are left untouched.
type DecisionPatch struct {
	Conclusion    *models.DecisionChoice `json:"conclusion"`
	Priority      *models.Priority       `json:"priority"`
	WhyApply      *string                `json:"whyApply"`
	FitReason     *string                `json:"fitReason"`
	RiskReason    *string                `json:"riskReason"`
	Strengths     *string                `json:"strengths"`
	Weaknesses    *string                `json:"weaknesses"`
	Strategy      *string                `json:"strategy"`
	PostResult    *models.PostResult     `json:"postResult"`
	WhatWorked    *string                `json:"whatWorked"`
	WhatToImprove *string                `json:"whatToImprove"`
	Lessons       *string                `json:"lessons"`
	FollowUp      *string                `json:"followUp"`
}

func UpdateDecision(doc *models.Document, id string, patch DecisionPatch) (*models.Decision, error) {
	var d *models.Decision
	for i := range doc.Decisions {
		if doc.Decisions[i].ID == id {
			d = &doc.Decisions[i]
			break
		}
	}
	if d == nil {
		return nil, ErrNotFound
	}
	if patch.Conclusion != nil {
		d.Conclusion = *patch.Conclusion
	}
	if patch.Priority != nil {
		d.Priority = *patch.Priority
	}
	if patch.WhyApply != nil {
		d.WhyApply = *patch.WhyApply
	}
	if patch.FitReason != nil {
		d.FitReason = *patch.FitReason
	}
	if patch.RiskReason != nil {
		d.RiskReason = *patch.RiskReason
	}
	if patch.Strengths != nil {
		d.Strengths = *patch.Strengths
	}
	if patch.Weaknesses != nil {
		d.Weaknesses = *patch.Weaknesses
	}
	if patch.Strategy != nil {
		d.Strategy = *patch.Strategy
	}
	if patch.PostResult != nil {
		d.PostResult = *patch.PostResult
	}
	if patch.WhatWorked != nil {
		d.WhatWorked = *patch.WhatWorked
	}
	if patch.WhatToImprove != nil {
		d.WhatToImprove = *patch.WhatToImprove
	}
	if patch.Lessons != nil {
		d.Lessons = *patch.Lessons
	}
	if patch.FollowUp != nil {
		d.FollowUp = *patch.FollowUp
	}
	return d, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func stripMaterialFromProjects(doc *models.Document, materialID string) {
	for i := range doc.Projects {
		doc.Projects[i].MaterialTaskIDs = removeID(doc.Projects[i].MaterialTaskIDs, materialID)
	}
}
