package models

import "time"

// SchemaVersion is the persisted document schema version.
const SchemaVersion = 1

// Meta carries document-level bookkeeping.
type Meta struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Document is the whole tracker state: four linked collections plus
// metadata. It is the unit of persistence and the unit every mutation
// and the normalization pass operate on.
type Document struct {
	Projects  []Project      `json:"projects"`
	Outreach  []Outreach     `json:"outreach"`
	Materials []MaterialTask `json:"materials"`
	Decisions []Decision     `json:"decisions"`
	Meta      Meta           `json:"meta"`
}

// Clone returns a deep copy so transforms never alias the caller's slices.
func (d *Document) Clone() *Document {
	out := &Document{
		Projects:  make([]Project, len(d.Projects)),
		Outreach:  make([]Outreach, len(d.Outreach)),
		Materials: make([]MaterialTask, len(d.Materials)),
		Decisions: make([]Decision, len(d.Decisions)),
		Meta:      d.Meta,
	}
	if d.Projects == nil {
		out.Projects = nil
	}
	if d.Outreach == nil {
		out.Outreach = nil
	}
	if d.Materials == nil {
		out.Materials = nil
	}
	if d.Decisions == nil {
		out.Decisions = nil
	}
	for i := range d.Projects {
		out.Projects[i] = d.Projects[i]
		out.Projects[i].Keywords = cloneStrings(d.Projects[i].Keywords)
		out.Projects[i].Funding = cloneStrings(d.Projects[i].Funding)
		out.Projects[i].RequiredMaterials = cloneStrings(d.Projects[i].RequiredMaterials)
		out.Projects[i].OutreachIDs = cloneStrings(d.Projects[i].OutreachIDs)
		out.Projects[i].MaterialTaskIDs = cloneStrings(d.Projects[i].MaterialTaskIDs)
	}
	for i := range d.Outreach {
		out.Outreach[i] = d.Outreach[i]
		out.Outreach[i].Directions = cloneStrings(d.Outreach[i].Directions)
		out.Outreach[i].ProjectIDs = cloneStrings(d.Outreach[i].ProjectIDs)
	}
	copy(out.Materials, d.Materials)
	copy(out.Decisions, d.Decisions)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// FindProject returns a pointer into the document's project slice, or nil.
func (d *Document) FindProject(id string) *Project {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return &d.Projects[i]
		}
	}
	return nil
}

// FindOutreach returns a pointer into the document's outreach slice, or nil.
func (d *Document) FindOutreach(id string) *Outreach {
	for i := range d.Outreach {
		if d.Outreach[i].ID == id {
			return &d.Outreach[i]
		}
	}
	return nil
}

// FindMaterial returns a pointer into the document's material slice, or nil.
func (d *Document) FindMaterial(id string) *MaterialTask {
	for i := range d.Materials {
		if d.Materials[i].ID == id {
			return &d.Materials[i]
		}
	}
	return nil
}
