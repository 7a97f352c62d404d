package report

import "testing"

func TestStoreSessionLifecycle(t *testing.T) {
	s := NewStore()

	id := s.NewSession()
	if id == "" {
		t.Fatal("NewSession returned an empty id")
	}
	if !s.Has(id) {
		t.Fatal("session should exist after NewSession")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	data, ok := s.Snapshot(id)
	if !ok {
		t.Fatal("Snapshot should find the new session")
	}
	if data.SNo != DefaultReport().SNo {
		t.Errorf("new session should be seeded from the default template")
	}

	s.Drop(id)
	if s.Has(id) {
		t.Error("session should be gone after Drop")
	}
	if _, ok := s.Snapshot(id); ok {
		t.Error("Snapshot should miss after Drop")
	}
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	s := NewStore()
	id := s.NewSession()

	first, _ := s.Snapshot(id)
	first.SurveyorName = "mutated"
	first.Recommendations[0].Depth = "mutated"

	second, _ := s.Snapshot(id)
	if second.SurveyorName == "mutated" {
		t.Error("mutating a snapshot leaked into the store")
	}
	if second.Recommendations[0].Depth == "mutated" {
		t.Error("mutating a snapshot slice leaked into the store")
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	id := s.NewSession()

	next, _ := s.Snapshot(id)
	next.Location = "New site"
	if !s.Replace(id, next) {
		t.Fatal("Replace should succeed for an existing session")
	}

	// The caller keeps ownership of what it passed in.
	next.Location = "mutated after replace"
	got, _ := s.Snapshot(id)
	if got.Location != "New site" {
		t.Errorf("Location = %q, want %q", got.Location, "New site")
	}

	if s.Replace("missing", next) {
		t.Error("Replace should fail for an unknown session")
	}
}
