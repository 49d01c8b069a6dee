package models

import "encoding/json"

// unassignedSentinel is the wire value meaning "no project target".
// Persisted documents predating this codebase use it, so the JSON codec
// keeps reading and writing it; in-process code only ever sees TargetRef.
const unassignedSentinel = "unassigned"

// TargetRef is a material task's optional owning-project reference. The
// zero value is unassigned.
type TargetRef struct {
	projectID string
}

// Unassigned returns the empty target reference.
func Unassigned() TargetRef {
	return TargetRef{}
}

// ProjectRef returns a reference to the given project id. An empty id or
// the legacy sentinel yields the unassigned reference.
func ProjectRef(id string) TargetRef {
	if id == "" || id == unassignedSentinel {
		return TargetRef{}
	}
	return TargetRef{projectID: id}
}

// IsAssigned reports whether the reference names a project.
func (r TargetRef) IsAssigned() bool {
	return r.projectID != ""
}

// ProjectID returns the referenced project id; ok is false when unassigned.
func (r TargetRef) ProjectID() (id string, ok bool) {
	return r.projectID, r.projectID != ""
}

func (r TargetRef) MarshalJSON() ([]byte, error) {
	if r.projectID == "" {
		return json.Marshal(unassignedSentinel)
	}
	return json.Marshal(r.projectID)
}

// UnmarshalJSON never fails: anything that is not a plain project-id
// string degrades to unassigned, matching the store's best-effort-repair
// trust model.
func (r *TargetRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*r = TargetRef{}
		return nil
	}
	*r = ProjectRef(s)
	return nil
}
