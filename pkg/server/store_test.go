package server

import "testing"

func TestCandidateStoreAdd(t *testing.T) {
	cs := NewCandidateStore()

	added := cs.Add("DOM.getText", "DOM.batchExtract", "DOM.getText", "")
	if added != 2 {
		t.Errorf("expected 2 added (duplicate and empty skipped), got %d", added)
	}
	if cs.Len() != 2 {
		t.Errorf("expected 2 held, got %d", cs.Len())
	}
	if !cs.Has("DOM.getText") {
		t.Error("expected DOM.getText to be held")
	}
	if cs.Has("missing") {
		t.Error("did not expect missing to be held")
	}
}

func TestCandidateStoreInsertionOrder(t *testing.T) {
	cs := NewCandidateStore()
	cs.Add("zebra", "apple", "mango")

	list := cs.List()
	expected := []string{"zebra", "apple", "mango"}
	if len(list) != len(expected) {
		t.Fatalf("expected %d candidates, got %d", len(expected), len(list))
	}
	for i := range expected {
		if list[i] != expected[i] {
			t.Errorf("position %d: got %q, want %q", i, list[i], expected[i])
		}
	}
}

func TestCandidateStoreRemove(t *testing.T) {
	cs := NewCandidateStore()
	cs.Add("one", "two", "three")

	removed := cs.Remove("two", "nope")
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if cs.Has("two") {
		t.Error("two should be gone")
	}

	list := cs.List()
	if len(list) != 2 || list[0] != "one" || list[1] != "three" {
		t.Errorf("unexpected remaining candidates: %v", list)
	}
}

func TestCandidateStoreClear(t *testing.T) {
	cs := NewCandidateStore()
	cs.Add("one", "two")
	cs.Clear()

	if cs.Len() != 0 {
		t.Errorf("expected empty store, got %d", cs.Len())
	}
	if cs.Has("one") {
		t.Error("cleared store should not hold one")
	}

	// Store must stay usable after Clear.
	cs.Add("one")
	if cs.Len() != 1 {
		t.Errorf("expected 1 held after re-add, got %d", cs.Len())
	}
}

func TestCandidateStoreListIsACopy(t *testing.T) {
	cs := NewCandidateStore()
	cs.Add("one", "two")

	list := cs.List()
	list[0] = "mutated"

	if cs.List()[0] != "one" {
		t.Error("List should return a copy")
	}
}
