package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStateStore(t *testing.T) {
	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got == nil || len(got.Tvs) != 0 {
			t.Errorf("Load() = %+v, want empty state", got)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "nested", "state.json"))

		paired := time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC)
		state := &RemoteState{
			LastHost: "192.168.1.20",
			Tvs: []PairedTv{{
				Host:        "192.168.1.20",
				Name:        "Living Room TV",
				ServiceName: "BRAVIA 4K GB",
				MAC:         "aa:bb:cc:dd:ee:ff",
				PairedAt:    paired,
			}},
		}
		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Version != StateVersion {
			t.Errorf("Version = %d, want %d", got.Version, StateVersion)
		}
		if got.SavedAt.IsZero() {
			t.Error("SavedAt not set")
		}
		if got.LastHost != "192.168.1.20" {
			t.Errorf("LastHost = %q", got.LastHost)
		}
		if len(got.Tvs) != 1 {
			t.Fatalf("len(Tvs) = %d, want 1", len(got.Tvs))
		}
		if !got.Tvs[0].PairedAt.Equal(paired) {
			t.Errorf("PairedAt = %v, want %v", got.Tvs[0].PairedAt, paired)
		}
		if got.Tvs[0].MAC != "aa:bb:cc:dd:ee:ff" {
			t.Errorf("MAC = %q", got.Tvs[0].MAC)
		}

		if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
			t.Error("temporary file left behind")
		}
	})

	t.Run("Update", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "state.json"))

		for _, host := range []string{"10.0.0.9", "10.0.0.2"} {
			h := host
			if err := store.Update(func(s *RemoteState) { s.Upsert(PairedTv{Host: h}) }); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(got.Tvs) != 2 || got.Tvs[0].Host != "10.0.0.2" {
			t.Errorf("Tvs = %+v, want two entries sorted by host", got.Tvs)
		}
	})

	t.Run("CorruptFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewStateStore(path).Load(); err == nil {
			t.Error("Load() succeeded on a corrupt file")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "state.json"))
		if err := store.Save(&RemoteState{}); err != nil {
			t.Fatal(err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("second Clear() error = %v", err)
		}
	})
}

func TestRemoteState(t *testing.T) {
	t.Run("UpsertKeepsKnownFields", func(t *testing.T) {
		s := &RemoteState{}
		s.Upsert(PairedTv{Host: "10.0.0.2", Name: "Kitchen", MAC: "aa:bb:cc:dd:ee:ff"})

		connected := time.Now()
		s.Upsert(PairedTv{Host: "10.0.0.2", LastConnectedAt: connected})

		if len(s.Tvs) != 1 {
			t.Fatalf("len(Tvs) = %d, want 1", len(s.Tvs))
		}
		tv := s.Tvs[0]
		if tv.Name != "Kitchen" || tv.MAC != "aa:bb:cc:dd:ee:ff" {
			t.Errorf("known fields lost: %+v", tv)
		}
		if !tv.LastConnectedAt.Equal(connected) {
			t.Errorf("LastConnectedAt = %v", tv.LastConnectedAt)
		}
	})

	t.Run("Find", func(t *testing.T) {
		s := &RemoteState{Tvs: []PairedTv{{Host: "10.0.0.2", Name: "Kitchen", ServiceName: "SHIELD"}}}

		for _, key := range []string{"10.0.0.2", "kitchen", "SHIELD"} {
			if _, ok := s.Find(key); !ok {
				t.Errorf("Find(%q) found nothing", key)
			}
		}
		if _, ok := s.Find("bedroom"); ok {
			t.Error("Find(bedroom) matched")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		s := &RemoteState{LastHost: "10.0.0.2", Tvs: []PairedTv{{Host: "10.0.0.2"}, {Host: "10.0.0.3"}}}

		if !s.Remove("10.0.0.2") {
			t.Fatal("Remove() = false")
		}
		if s.Remove("10.0.0.2") {
			t.Error("second Remove() = true")
		}
		if s.LastHost != "" {
			t.Errorf("LastHost = %q, want cleared", s.LastHost)
		}
		if len(s.Tvs) != 1 || s.Tvs[0].Host != "10.0.0.3" {
			t.Errorf("Tvs = %+v", s.Tvs)
		}
	})
}
