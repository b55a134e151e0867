package diag

import "testing"

func TestBagSortedByPosition(t *testing.T) {
	b := NewBag("test.gg")
	b.Errorf(Position{Line: 3, Col: 1}, "third")
	b.Warnf(Position{Line: 1, Col: 5}, "first")
	b.Infof(Position{Line: 1, Col: 2}, "second")

	sorted := b.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(sorted))
	}

	want := []string{"second", "first", "third"}
	for i, d := range sorted {
		if d.Message != want[i] {
			t.Errorf("index %d: got message %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag("test.gg")
	if b.HasErrors() {
		t.Fatal("empty bag should not have errors")
	}

	b.Warnf(Position{Line: 1, Col: 1}, "just a warning")
	if b.HasErrors() {
		t.Fatal("bag with only a warning should not have errors")
	}

	b.Errorf(Position{Line: 2, Col: 1}, "boom")
	if !b.HasErrors() {
		t.Fatal("bag with an error should report HasErrors")
	}

	if b.ErrorCount() != 1 || b.WarningCount() != 1 {
		t.Errorf("got ErrorCount=%d WarningCount=%d, want 1 and 1", b.ErrorCount(), b.WarningCount())
	}
}

func TestBagMonotone(t *testing.T) {
	b := NewBag("test.gg")
	b.Errorf(Position{Line: 1, Col: 1}, "one")
	if b.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", b.Len())
	}

	b.Errorf(Position{Line: 2, Col: 1}, "two")
	if b.Len() != 2 {
		t.Fatalf("expected diagnostics to accumulate, got %d", b.Len())
	}
}
