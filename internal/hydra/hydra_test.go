package hydra

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_BareArray(t *testing.T) {
	coll := Normalize(json.RawMessage(`[{"id":"a"},{"id":"b"},{"id":"c"}]`))

	if coll.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", coll.TotalItems)
	}
	want := []json.RawMessage{
		json.RawMessage(`{"id":"a"}`),
		json.RawMessage(`{"id":"b"}`),
		json.RawMessage(`{"id":"c"}`),
	}
	if diff := cmp.Diff(want, coll.Members); diff != "" {
		t.Errorf("Members mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_Envelope(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMembers int
		wantTotal   int
	}{
		{"with total", `{"hydra:member":[{"id":"a"}],"hydra:totalItems":42}`, 1, 42},
		{"total missing", `{"hydra:member":[{"id":"a"},{"id":"b"}]}`, 2, 2},
		{"members missing", `{"hydra:totalItems":7}`, 0, 7},
		{"empty object", `{}`, 0, 0},
		{"negative total ignored", `{"hydra:member":[{"id":"a"}],"hydra:totalItems":-5}`, 1, 1},
		{"unknown keys ignored", `{"@context":"/contexts/Message","hydra:member":[],"hydra:totalItems":0}`, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coll := Normalize(json.RawMessage(tc.input))
			if len(coll.Members) != tc.wantMembers {
				t.Errorf("len(Members) = %d, want %d", len(coll.Members), tc.wantMembers)
			}
			if coll.TotalItems != tc.wantTotal {
				t.Errorf("TotalItems = %d, want %d", coll.TotalItems, tc.wantTotal)
			}
		})
	}
}

// Normalize is total: every input shape yields a usable collection.
func TestNormalize_OtherShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"null", `null`},
		{"number", `42`},
		{"string", `"not a collection"`},
		{"bool", `true`},
		{"empty input", ``},
		{"garbage", `{{{`},
		{"truncated array", `[{"id":"a"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coll := Normalize(json.RawMessage(tc.input))
			if coll.Members == nil {
				t.Error("Members is nil, want empty slice")
			}
			if len(coll.Members) != 0 {
				t.Errorf("len(Members) = %d, want 0", len(coll.Members))
			}
			if coll.TotalItems != 0 {
				t.Errorf("TotalItems = %d, want 0", coll.TotalItems)
			}
		})
	}
}

func TestNormalize_EmptyArray(t *testing.T) {
	coll := Normalize(json.RawMessage(`[]`))
	if len(coll.Members) != 0 || coll.TotalItems != 0 {
		t.Errorf("Normalize([]) = {%d members, total %d}, want empty", len(coll.Members), coll.TotalItems)
	}
}

func TestNormalize_PreservesOrder(t *testing.T) {
	coll := Normalize(json.RawMessage(`["first","second","third"]`))
	for i, want := range []string{`"first"`, `"second"`, `"third"`} {
		if string(coll.Members[i]) != want {
			t.Errorf("Members[%d] = %s, want %s", i, coll.Members[i], want)
		}
	}
}
