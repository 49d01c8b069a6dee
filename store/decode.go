package store

import (
	"encoding/json"
	"errors"

	"github.com/EasonYD88/SURF-application-website/models"
)

// ErrMissingCollections marks a payload that lacks one of the four
// required top-level collections. Import surfaces it as a user-visible
// rejection; load answers it with the seed document.
var ErrMissingCollections = errors.New("document is missing one of projects/outreach/materials/decisions")

type rawDocument struct {
	Projects  json.RawMessage `json:"projects"`
	Outreach  json.RawMessage `json:"outreach"`
	Materials json.RawMessage `json:"materials"`
	Decisions json.RawMessage `json:"decisions"`
	Meta      json.RawMessage `json:"meta"`
}

// DecodeDocument parses candidate JSON into a Document without ever
// rejecting entity-level shape problems: a collection that is absent or
// not an array decodes to a nil slice (Normalize replaces those from
// seed), and an element that does not decode is dropped. Only text that
// is not JSON at all is an error.
func DecodeDocument(data []byte) (*models.Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := &models.Document{
		Projects:  decodeCollection[models.Project](raw.Projects),
		Outreach:  decodeCollection[models.Outreach](raw.Outreach),
		Materials: decodeCollection[models.MaterialTask](raw.Materials),
		Decisions: decodeCollection[models.Decision](raw.Decisions),
	}
	if raw.Meta != nil {
		// Tolerant: a malformed meta block just means default stamps.
		_ = json.Unmarshal(raw.Meta, &doc.Meta)
	}
	return doc, nil
}

// hasAllCollections reports whether every required top-level collection is
// present, whatever its shape.
func hasAllCollections(data []byte) bool {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}
	return raw.Projects != nil && raw.Outreach != nil &&
		raw.Materials != nil && raw.Decisions != nil
}

func decodeCollection[T any](raw json.RawMessage) []T {
	if raw == nil {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
