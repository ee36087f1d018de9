package importer

import "testing"

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	first := "from file one"
	second := "from file two"
	records := []RawActivityRecord{
		{ActivityID: 1, ActivityName: first},
		{ActivityID: 2},
		{ActivityID: 1, ActivityName: second},
		{ActivityID: 3},
	}

	out := dedupe(records)

	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
	if out[0].ActivityID != 1 || out[1].ActivityID != 2 || out[2].ActivityID != 3 {
		t.Fatalf("unexpected order: %v %v %v", out[0].ActivityID, out[1].ActivityID, out[2].ActivityID)
	}
	if out[0].ActivityName != first {
		t.Fatalf("expected first occurrence to win, got %q", out[0].ActivityName)
	}
}

func TestDedupeEmptyInput(t *testing.T) {
	if out := dedupe(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d records", len(out))
	}
}
