package store

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/EasonYD88/SURF-application-website/models"
)

// memStorage keeps the persisted document in memory for tests.
type memStorage struct {
	data []byte
	err  error
}

func (m *memStorage) Get() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.data == nil {
		return nil, nil
	}
	return m.data, nil
}

func (m *memStorage) Set(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memStorage) Close() error { return nil }

func testStore(ms *memStorage) *Store {
	return New(ms, log.New(io.Discard, "", 0))
}

func TestLoadSeedsEmptyStorage(t *testing.T) {
	st := testStore(&memStorage{})
	doc := st.Load()

	if len(doc.Projects) != 1 || len(doc.Outreach) != 1 || len(doc.Materials) != 2 || len(doc.Decisions) != 1 {
		t.Fatalf("seed shape: %d projects, %d outreach, %d materials, %d decisions",
			len(doc.Projects), len(doc.Outreach), len(doc.Materials), len(doc.Decisions))
	}

	p := doc.Projects[0]
	o := doc.Outreach[0]
	if !containsID(p.OutreachIDs, o.ID) || !containsID(o.ProjectIDs, p.ID) {
		t.Fatalf("seed project and outreach are not cross-linked")
	}
	if doc.Decisions[0].ProjectID != p.ID {
		t.Fatalf("seed decision not owned by the seed project")
	}
}

func TestLoadSeedsOnStorageError(t *testing.T) {
	st := testStore(&memStorage{err: errors.New("backend down")})
	doc := st.Load()
	if len(doc.Projects) == 0 {
		t.Fatalf("storage error should fall back to seed, got empty document")
	}
}

func TestLoadSeedsOnGarbage(t *testing.T) {
	st := testStore(&memStorage{data: []byte("{not json")})
	doc := st.Load()
	if len(doc.Projects) == 0 {
		t.Fatalf("unparsable document should fall back to seed")
	}
}

func TestLoadSeedsOnMissingCollections(t *testing.T) {
	st := testStore(&memStorage{data: []byte(`{"projects":[],"outreach":[]}`)})
	doc := st.Load()
	if len(doc.Materials) != 2 {
		t.Fatalf("document missing collections should fall back to seed, got %d materials", len(doc.Materials))
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	ms := &memStorage{}
	st := testStore(ms)

	doc := st.Load()
	created := CreateProject(doc, models.Project{Name: "Roundtrip", Fit: 8})
	if _, err := st.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := testStore(ms).Load()
	found := reloaded.FindProject(created.ID)
	if found == nil {
		t.Fatalf("saved project not found after reload")
	}
	if found.Name != "Roundtrip" {
		t.Fatalf("reloaded project name = %q", found.Name)
	}
}

func TestApplyDoesNotPersistOnError(t *testing.T) {
	ms := &memStorage{}
	st := testStore(ms)
	if _, err := st.Save(st.Load()); err != nil {
		t.Fatalf("initial save: %v", err)
	}
	before := append([]byte(nil), ms.data...)

	_, err := st.Apply(func(doc *models.Document) error {
		doc.Projects = nil
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Fatalf("Apply: got %v, want ErrNotFound", err)
	}
	if string(ms.data) != string(before) {
		t.Fatalf("failed Apply changed persisted state")
	}
}

func TestImportRejectsMissingCollections(t *testing.T) {
	ms := &memStorage{}
	st := testStore(ms)
	if _, err := st.Save(st.Load()); err != nil {
		t.Fatalf("initial save: %v", err)
	}
	before := append([]byte(nil), ms.data...)

	_, err := st.ImportJSON([]byte(`{"projects":[],"meta":{}}`))
	if !errors.Is(err, ErrMissingCollections) {
		t.Fatalf("ImportJSON: got %v, want ErrMissingCollections", err)
	}
	if string(ms.data) != string(before) {
		t.Fatalf("rejected import changed persisted state")
	}
}

func TestImportNormalizesPayload(t *testing.T) {
	payload, err := json.Marshal(messyDocument())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	st := testStore(&memStorage{})
	doc, err := st.ImportJSON(payload)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if containsID(doc.FindProject("p1").OutreachIDs, "missing") {
		t.Fatalf("import skipped the normalization gate")
	}
}
