package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/EasonYD88/SURF-application-website/models"
)

// projectCSVHeader is the fixed 16-column export layout the client's
// spreadsheet tooling expects. Order matters.
var projectCSVHeader = []string{
	"ProjectID", "Name", "Institution", "Region", "Type", "DDL",
	"Funding", "Status", "Fit", "Risk", "ROI", "Priority", "Decision",
	"NextAction", "NextActionDate", "OfficialLink",
}

// ExportJSON serializes the whole document, pretty-printed.
func ExportJSON(doc *models.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ExportProjectsCSV writes the project collection as CSV. Fields with a
// comma, quote or newline come out quoted with internal quotes doubled;
// multi-value funding is semicolon-joined.
func ExportProjectsCSV(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(projectCSVHeader); err != nil {
		return nil, err
	}
	for _, p := range doc.Projects {
		row := []string{
			p.Code,
			p.Name,
			p.Institution,
			p.Region,
			p.Type,
			p.Deadline,
			strings.Join(p.Funding, ";"),
			string(p.Status),
			formatScore(p.Fit),
			formatScore(p.Risk),
			formatScore(p.ROI),
			string(p.Priority),
			string(p.Decision),
			p.NextAction,
			p.NextActionDate,
			p.Link,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
