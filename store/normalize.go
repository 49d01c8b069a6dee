package store

import (
	"time"

	"github.com/EasonYD88/SURF-application-website/models"
)

// Normalize takes an arbitrary candidate document and returns one where
// every cross-reference invariant holds:
//
//   - each id in a project's outreachIds names an existing outreach whose
//     projectIds contains the project, and vice versa;
//   - a material's target is either a known project or unassigned, and a
//     project lists a material id only when the material targets it or is
//     unassigned; an assigned material appears in exactly one project list;
//   - decisions reference existing projects only.
//
// A link survives when either side recorded it and both endpoints exist.
// The surviving links are computed once as an edge set and both sides are
// rewritten from it, which makes the function idempotent by construction.
// Collections that decoded to nil are replaced wholesale from a fresh
// seed document; everything else present in the input is preserved and
// nothing is invented. Normalize never fails.
func Normalize(doc *models.Document) *models.Document {
	out := doc.Clone()

	var seeded *models.Document
	seed := func() *models.Document {
		if seeded == nil {
			seeded = Seed()
		}
		return seeded
	}
	if out.Projects == nil {
		out.Projects = seed().Projects
	}
	if out.Outreach == nil {
		out.Outreach = seed().Outreach
	}
	if out.Materials == nil {
		out.Materials = seed().Materials
	}
	if out.Decisions == nil {
		out.Decisions = seed().Decisions
	}

	projectExists := make(map[string]bool, len(out.Projects))
	for i := range out.Projects {
		projectExists[out.Projects[i].ID] = true
	}
	outreachExists := make(map[string]bool, len(out.Outreach))
	for i := range out.Outreach {
		outreachExists[out.Outreach[i].ID] = true
	}
	materialByID := make(map[string]*models.MaterialTask, len(out.Materials))
	for i := range out.Materials {
		materialByID[out.Materials[i].ID] = &out.Materials[i]
	}

	for i := range out.Projects {
		p := &out.Projects[i]
		p.Keywords = coerceSet(p.Keywords)
		p.Funding = coerceSet(p.Funding)
		p.RequiredMaterials = coerceSet(p.RequiredMaterials)
	}
	for i := range out.Outreach {
		out.Outreach[i].Directions = coerceSet(out.Outreach[i].Directions)
	}

	// Project <-> Outreach: union of both halves, dangling ids dropped.
	type edge struct{ project, outreach string }
	edges := make(map[edge]bool)
	for i := range out.Projects {
		p := &out.Projects[i]
		for _, oid := range p.OutreachIDs {
			if outreachExists[oid] {
				edges[edge{p.ID, oid}] = true
			}
		}
	}
	for i := range out.Outreach {
		o := &out.Outreach[i]
		for _, pid := range o.ProjectIDs {
			if projectExists[pid] {
				edges[edge{pid, o.ID}] = true
			}
		}
	}
	for i := range out.Projects {
		p := &out.Projects[i]
		ids := filterIDs(p.OutreachIDs, func(id string) bool {
			return edges[edge{p.ID, id}]
		})
		for j := range out.Outreach {
			oid := out.Outreach[j].ID
			if edges[edge{p.ID, oid}] && !containsID(ids, oid) {
				ids = append(ids, oid)
			}
		}
		p.OutreachIDs = ids
	}
	for i := range out.Outreach {
		o := &out.Outreach[i]
		ids := filterIDs(o.ProjectIDs, func(id string) bool {
			return edges[edge{id, o.ID}]
		})
		for j := range out.Projects {
			pid := out.Projects[j].ID
			if edges[edge{pid, o.ID}] && !containsID(ids, pid) {
				ids = append(ids, pid)
			}
		}
		o.ProjectIDs = ids
	}

	// Materials: the single target reference is authoritative. A project
	// keeps a held id only for materials that target it or are unassigned
	// (unassigned tasks are shareable and exempt from the symmetry rule).
	for i := range out.Materials {
		m := &out.Materials[i]
		if id, ok := m.Target.ProjectID(); ok && !projectExists[id] {
			m.Target = models.Unassigned()
		}
	}
	for i := range out.Projects {
		p := &out.Projects[i]
		ids := filterIDs(p.MaterialTaskIDs, func(id string) bool {
			m, ok := materialByID[id]
			if !ok {
				return false
			}
			target, assigned := m.Target.ProjectID()
			return !assigned || target == p.ID
		})
		for j := range out.Materials {
			m := &out.Materials[j]
			if target, ok := m.Target.ProjectID(); ok && target == p.ID && !containsID(ids, m.ID) {
				ids = append(ids, m.ID)
			}
		}
		p.MaterialTaskIDs = ids
	}

	kept := out.Decisions[:0]
	for _, d := range out.Decisions {
		if projectExists[d.ProjectID] {
			kept = append(kept, d)
		}
	}
	out.Decisions = kept

	out.Meta.Version = models.SchemaVersion
	if out.Meta.CreatedAt.IsZero() {
		out.Meta.CreatedAt = time.Now()
	}
	out.Meta.UpdatedAt = time.Now()
	return out
}

// coerceSet turns a missing string set into an empty one.
func coerceSet(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// filterIDs keeps ids satisfying keep, dropping duplicates, in order.
func filterIDs(ids []string, keep func(string) bool) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if keep(id) && !containsID(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
