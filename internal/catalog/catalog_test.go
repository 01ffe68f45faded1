package catalog

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-symop/internal/op"
)

func TestAllIsNaturallySortedAndComplete(t *testing.T) {
	entries := All()
	if len(entries) != int(op.NumBuiltInOps) {
		t.Fatalf("All() returned %d entries, want %d", len(entries), op.NumBuiltInOps)
	}
	// ACOS must sort before ADD (alphabetical, which natural order agrees
	// with here since there are no numeric suffixes in this catalogue).
	var acosIdx, addIdx = -1, -1
	for i, e := range entries {
		switch e.Name {
		case "ACOS":
			acosIdx = i
		case "ADD":
			addIdx = i
		}
	}
	if acosIdx < 0 || addIdx < 0 || acosIdx > addIdx {
		t.Errorf("expected ACOS before ADD, got indices %d, %d", acosIdx, addIdx)
	}
}

func TestFilterByInclude(t *testing.T) {
	entries := Filter(All(), `{"include":["ADD","SUB"]}`)
	if len(entries) != 2 {
		t.Fatalf("Filter returned %d entries, want 2", len(entries))
	}
	names := map[string]bool{entries[0].Name: true, entries[1].Name: true}
	if !names["ADD"] || !names["SUB"] {
		t.Errorf("Filter result = %+v, want ADD and SUB", entries)
	}
}

func TestFilterEmptyDocMatchesAll(t *testing.T) {
	entries := Filter(All(), "")
	if len(entries) != int(op.NumBuiltInOps) {
		t.Errorf("empty filter should match everything, got %d", len(entries))
	}
}

func TestToJSONRoundTripsShape(t *testing.T) {
	entries := Filter(All(), `{"include":["ADD","INV"]}`)
	doc, err := ToJSON(entries)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	snaps.MatchSnapshot(t, doc)
}
