package models

import (
	"encoding/json"
	"testing"
)

func TestTargetRefWireFormat(t *testing.T) {
	assigned := ProjectRef("p1")
	data, err := json.Marshal(assigned)
	if err != nil {
		t.Fatalf("marshal assigned: %v", err)
	}
	if string(data) != `"p1"` {
		t.Fatalf("assigned ref marshaled as %s, want \"p1\"", data)
	}

	data, err = json.Marshal(Unassigned())
	if err != nil {
		t.Fatalf("marshal unassigned: %v", err)
	}
	if string(data) != `"unassigned"` {
		t.Fatalf("unassigned ref marshaled as %s, want \"unassigned\"", data)
	}
}

func TestTargetRefDecodeDegradesToUnassigned(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want TargetRef
	}{
		{"project id", `"p1"`, ProjectRef("p1")},
		{"legacy sentinel", `"unassigned"`, Unassigned()},
		{"empty string", `""`, Unassigned()},
		{"null", `null`, Unassigned()},
		{"number", `42`, Unassigned()},
		{"object", `{"id":"p1"}`, Unassigned()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref TargetRef
			if err := json.Unmarshal([]byte(tc.in), &ref); err != nil {
				t.Fatalf("unmarshal %s returned error: %v", tc.in, err)
			}
			if ref != tc.want {
				t.Fatalf("unmarshal %s = %+v, want %+v", tc.in, ref, tc.want)
			}
		})
	}
}
