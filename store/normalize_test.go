package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/EasonYD88/SURF-application-website/models"
)

// messyDocument builds a document violating most link invariants: ids
// recorded on one side only, dangling ids, a material claimed by the
// wrong project, a decision for a missing project.
func messyDocument() *models.Document {
	return &models.Document{
		Projects: []models.Project{
			{
				ID:              "p1",
				Name:            "Alpha",
				OutreachIDs:     []string{"missing", "o1"},
				MaterialTaskIDs: []string{"m-gone", "m2"},
			},
			{
				ID:              "p2",
				Name:            "Beta",
				MaterialTaskIDs: []string{"m2", "m3"},
			},
		},
		Outreach: []models.Outreach{
			{ID: "o1", PIName: "Prof. One"},
			{ID: "o2", PIName: "Prof. Two", ProjectIDs: []string{"p2", "p-gone"}},
		},
		Materials: []models.MaterialTask{
			{ID: "m1", Target: models.ProjectRef("p-gone")},
			{ID: "m2", Target: models.ProjectRef("p1")},
			{ID: "m3", Target: models.Unassigned()},
		},
		Decisions: []models.Decision{
			{ID: "d1", ProjectID: "p1"},
			{ID: "d2", ProjectID: "p-gone"},
		},
	}
}

func stripTimestamps(doc *models.Document) *models.Document {
	out := doc.Clone()
	out.Meta.CreatedAt = time.Time{}
	out.Meta.UpdatedAt = time.Time{}
	return out
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(messyDocument())
	twice := Normalize(once)
	if !reflect.DeepEqual(stripTimestamps(once), stripTimestamps(twice)) {
		t.Fatalf("normalize is not idempotent:\nonce:  %+v\ntwice: %+v", stripTimestamps(once), stripTimestamps(twice))
	}
}

func TestNormalizeClosure(t *testing.T) {
	doc := Normalize(messyDocument())

	for _, p := range doc.Projects {
		for _, oid := range p.OutreachIDs {
			o := doc.FindOutreach(oid)
			if o == nil {
				t.Fatalf("project %s references missing outreach %s", p.ID, oid)
			}
			if !containsID(o.ProjectIDs, p.ID) {
				t.Fatalf("link %s<->%s not mirrored on the outreach side", p.ID, oid)
			}
		}
		for _, mid := range p.MaterialTaskIDs {
			m := doc.FindMaterial(mid)
			if m == nil {
				t.Fatalf("project %s references missing material %s", p.ID, mid)
			}
			if target, ok := m.Target.ProjectID(); ok && target != p.ID {
				t.Fatalf("project %s holds material %s targeting %s", p.ID, mid, target)
			}
		}
	}
	for _, o := range doc.Outreach {
		for _, pid := range o.ProjectIDs {
			p := doc.FindProject(pid)
			if p == nil {
				t.Fatalf("outreach %s references missing project %s", o.ID, pid)
			}
			if !containsID(p.OutreachIDs, o.ID) {
				t.Fatalf("link %s<->%s not mirrored on the project side", pid, o.ID)
			}
		}
	}
	for _, m := range doc.Materials {
		target, ok := m.Target.ProjectID()
		if !ok {
			continue
		}
		p := doc.FindProject(target)
		if p == nil {
			t.Fatalf("material %s targets missing project %s", m.ID, target)
		}
		if !containsID(p.MaterialTaskIDs, m.ID) {
			t.Fatalf("material %s not listed by its target project %s", m.ID, target)
		}
	}
}

func TestNormalizePrunesDanglingIDs(t *testing.T) {
	doc := Normalize(messyDocument())

	p1 := doc.FindProject("p1")
	if !reflect.DeepEqual(p1.OutreachIDs, []string{"o1"}) {
		t.Fatalf("p1 outreachIds = %v, want [o1]", p1.OutreachIDs)
	}
	if containsID(p1.MaterialTaskIDs, "m-gone") {
		t.Fatalf("p1 still holds dangling material id: %v", p1.MaterialTaskIDs)
	}

	o2 := doc.FindOutreach("o2")
	if !reflect.DeepEqual(o2.ProjectIDs, []string{"p2"}) {
		t.Fatalf("o2 projectIds = %v, want [p2]", o2.ProjectIDs)
	}
}

func TestNormalizeUnionKeepsEitherSide(t *testing.T) {
	doc := Normalize(messyDocument())

	// o2 recorded the link to p2; p2 never did. Both sides hold it now.
	p2 := doc.FindProject("p2")
	if !containsID(p2.OutreachIDs, "o2") {
		t.Fatalf("p2 did not gain the outreach-held link: %v", p2.OutreachIDs)
	}
	// p1 recorded o1; o1 never recorded p1.
	o1 := doc.FindOutreach("o1")
	if !containsID(o1.ProjectIDs, "p1") {
		t.Fatalf("o1 did not gain the project-held link: %v", o1.ProjectIDs)
	}
}

func TestNormalizeMaterialTargetAuthoritative(t *testing.T) {
	doc := Normalize(messyDocument())

	// m2 targets p1; p2's claim on it must be dropped.
	p1 := doc.FindProject("p1")
	p2 := doc.FindProject("p2")
	if !containsID(p1.MaterialTaskIDs, "m2") {
		t.Fatalf("p1 lost its own material: %v", p1.MaterialTaskIDs)
	}
	if containsID(p2.MaterialTaskIDs, "m2") {
		t.Fatalf("m2 appears in two projects: %v", p2.MaterialTaskIDs)
	}

	// m3 is unassigned; p2 may keep holding it.
	if !containsID(p2.MaterialTaskIDs, "m3") {
		t.Fatalf("p2 lost its unassigned material: %v", p2.MaterialTaskIDs)
	}

	// m1 targeted a missing project and is reset.
	m1 := doc.FindMaterial("m1")
	if m1.Target.IsAssigned() {
		t.Fatalf("m1 target should have been reset to unassigned")
	}
}

func TestNormalizeNeverFabricates(t *testing.T) {
	in := messyDocument()
	inIDs := map[string]bool{}
	for _, p := range in.Projects {
		inIDs[p.ID] = true
	}
	for _, o := range in.Outreach {
		inIDs[o.ID] = true
	}
	for _, m := range in.Materials {
		inIDs[m.ID] = true
	}
	for _, d := range in.Decisions {
		inIDs[d.ID] = true
	}

	out := Normalize(in)
	for _, p := range out.Projects {
		if !inIDs[p.ID] {
			t.Fatalf("fabricated project %s", p.ID)
		}
	}
	for _, o := range out.Outreach {
		if !inIDs[o.ID] {
			t.Fatalf("fabricated outreach %s", o.ID)
		}
	}
	for _, m := range out.Materials {
		if !inIDs[m.ID] {
			t.Fatalf("fabricated material %s", m.ID)
		}
	}
	for _, d := range out.Decisions {
		if !inIDs[d.ID] {
			t.Fatalf("fabricated decision %s", d.ID)
		}
	}
}

func TestNormalizeDropsOrphanDecisions(t *testing.T) {
	doc := Normalize(messyDocument())
	if len(doc.Decisions) != 1 || doc.Decisions[0].ID != "d1" {
		t.Fatalf("decisions = %+v, want only d1", doc.Decisions)
	}
}

func TestNormalizeReplacesMalformedCollections(t *testing.T) {
	in := messyDocument()
	in.Outreach = nil // collection-level total loss

	out := Normalize(in)
	if len(out.Outreach) == 0 {
		t.Fatalf("nil outreach collection should be reseeded, got empty")
	}
	// Seeded outreach references seed projects that don't exist here, so
	// every seeded link must be pruned.
	for _, o := range out.Outreach {
		if len(o.ProjectIDs) != 0 {
			t.Fatalf("seeded outreach kept links to missing projects: %v", o.ProjectIDs)
		}
	}
	// The surviving input projects keep their own data.
	if out.FindProject("p1") == nil || out.FindProject("p2") == nil {
		t.Fatalf("input projects were lost during collection reseed")
	}
}

func TestNormalizeCoercesMissingSets(t *testing.T) {
	doc := Normalize(&models.Document{
		Projects:  []models.Project{{ID: "p1"}},
		Outreach:  []models.Outreach{{ID: "o1"}},
		Materials: []models.MaterialTask{},
		Decisions: []models.Decision{},
	})

	p := doc.FindProject("p1")
	if p.Keywords == nil || p.Funding == nil || p.RequiredMaterials == nil {
		t.Fatalf("string sets were not coerced to empty: %+v", p)
	}
	if doc.FindOutreach("o1").Directions == nil {
		t.Fatalf("outreach directions were not coerced to empty")
	}
}

func TestNormalizeStampsMeta(t *testing.T) {
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	in := messyDocument()
	in.Meta.CreatedAt = created
	in.Meta.Version = 99

	out := Normalize(in)
	if out.Meta.Version != models.SchemaVersion {
		t.Fatalf("version = %d, want %d", out.Meta.Version, models.SchemaVersion)
	}
	if !out.Meta.CreatedAt.Equal(created) {
		t.Fatalf("createdAt not preserved: %v", out.Meta.CreatedAt)
	}
	if out.Meta.UpdatedAt.IsZero() {
		t.Fatalf("updatedAt not stamped")
	}
}
