package controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/store"
)

type memStorage struct {
	data []byte
}

func (m *memStorage) Get() ([]byte, error) {
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

func testApp(t *testing.T) (*fiber.App, *memStorage) {
	t.Helper()
	ms := &memStorage{}
	quiet := log.New(io.Discard, "", 0)
	st := store.New(ms, quiet)
	tc := NewTrackerController(st, NewDocumentHub(quiet), quiet)

	app := fiber.New()
	app.Get("/api/v1/document", tc.GetDocument)
	app.Post("/api/v1/import", tc.ImportDocument)
	app.Post("/api/v1/projects", tc.CreateProject)
	app.Delete("/api/v1/projects/:id", tc.DeleteProject)
	return app, ms
}

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestGetDocumentServesSeed(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/document", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	if !env.Success {
		t.Fatalf("success = false: %s", env.Error)
	}
	var doc struct {
		Projects  []json.RawMessage `json:"projects"`
		Outreach  []json.RawMessage `json:"outreach"`
		Materials []json.RawMessage `json:"materials"`
		Decisions []json.RawMessage `json:"decisions"`
	}
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if len(doc.Projects) != 1 || len(doc.Materials) != 2 {
		t.Fatalf("seed shape: %d projects, %d materials", len(doc.Projects), len(doc.Materials))
	}
}

func TestCreateProjectRequiresName(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(`{"institution":"EPFL"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateAndDeleteProject(t *testing.T) {
	app, ms := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(`{"name":"Gamma","institution":"ETH"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	var doc struct {
		Projects []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if len(doc.Projects) != 2 || doc.Projects[0].Name != "Gamma" {
		t.Fatalf("new project not prepended: %+v", doc.Projects)
	}
	if !strings.Contains(string(ms.data), "Gamma") {
		t.Fatalf("create was not persisted")
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/projects/"+doc.Projects[0].ID, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/projects/nope", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleting a missing project: status = %d, want 404", resp.StatusCode)
	}
}

func TestImportRejectsIncompleteFile(t *testing.T) {
	app, ms := testApp(t)
	before := append([]byte(nil), ms.data...)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", strings.NewReader(`{"projects":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Success || !strings.Contains(env.Error, "missing") {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if string(ms.data) != string(before) {
		t.Fatalf("rejected import changed persisted state")
	}
}

func TestImportReplacesDocument(t *testing.T) {
	app, _ := testApp(t)

	payload := `{"projects":[{"id":"p1","name":"Imported"}],"outreach":[],"materials":[],"decisions":[],"meta":{}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/document", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	env := decodeEnvelope(t, resp)
	if !strings.Contains(string(env.Data), "Imported") {
		t.Fatalf("import did not replace the document")
	}
}
