package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/EasonYD88/SURF-application-website/models"
)

func TestExportProjectsCSV(t *testing.T) {
	doc := Normalize(&models.Document{
		Projects: []models.Project{{
			ID:          "p1",
			Code:        "SURF-AB12CD",
			Name:        `Example, "Lab"`,
			Institution: "EPFL",
			Funding:     []string{"stipend", "housing"},
			Fit:         8.5,
			Status:      models.StatusSubmitted,
		}},
		Outreach:  []models.Outreach{},
		Materials: []models.MaterialTask{},
		Decisions: []models.Decision{},
	})

	out, err := ExportProjectsCSV(doc)
	if err != nil {
		t.Fatalf("ExportProjectsCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row:\n%s", len(lines), out)
	}
	if lines[0] != strings.Join(projectCSVHeader, ",") {
		t.Fatalf("header = %q", lines[0])
	}

	row := lines[1]
	if !strings.Contains(row, `"Example, ""Lab"""`) {
		t.Fatalf("name with comma and quotes not escaped: %q", row)
	}
	if !strings.Contains(row, "stipend;housing") {
		t.Fatalf("funding not semicolon-joined: %q", row)
	}
	if !strings.HasPrefix(row, "SURF-AB12CD,") {
		t.Fatalf("row should lead with the project code: %q", row)
	}
	if !strings.Contains(row, ",8.5,") {
		t.Fatalf("score not formatted without trailing zeros: %q", row)
	}
}

func TestExportJSONRoundtrips(t *testing.T) {
	doc := Normalize(messyDocument())
	out, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	back, err := DecodeDocument(out)
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(back.Projects) != len(doc.Projects) || len(back.Decisions) != len(doc.Decisions) {
		t.Fatalf("export lost records")
	}
	if !json.Valid(out) {
		t.Fatalf("export is not valid JSON")
	}
}
