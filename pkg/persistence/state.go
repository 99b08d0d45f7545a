package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// RemoteState is the persisted client state.
type RemoteState struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// LastHost is the TV used most recently.
	LastHost string `json:"last_host,omitempty"`

	// Tvs lists the TVs this client paired with.
	Tvs []PairedTv `json:"tvs,omitempty"`
}

// PairedTv describes a TV that accepted this client.
type PairedTv struct {
	// Host is the address used to reach the TV.
	Host string `json:"host"`

	// Name is the friendly name from discovery, if known.
	Name string `json:"name,omitempty"`

	// ServiceName is the mDNS instance name, if known.
	ServiceName string `json:"service_name,omitempty"`

	// MAC is the hardware address used for Wake-on-LAN.
	MAC string `json:"mac,omitempty"`

	// PairedAt is when pairing completed.
	PairedAt time.Time `json:"paired_at"`

	// LastConnectedAt is when a remote session last became active.
	LastConnectedAt time.Time `json:"last_connected_at,omitempty"`
}

// Find returns the TV with the given host, name or service name.
func (s *RemoteState) Find(key string) (PairedTv, bool) {
	for _, tv := range s.Tvs {
		if tv.Host == key || strings.EqualFold(tv.Name, key) || tv.ServiceName == key {
			return tv, true
		}
	}
	return PairedTv{}, false
}

// Upsert adds tv or replaces the entry with the same host. Empty fields of
// tv keep the stored values.
func (s *RemoteState) Upsert(tv PairedTv) {
	for i, old := range s.Tvs {
		if old.Host != tv.Host {
			continue
		}
		if tv.Name == "" {
			tv.Name = old.Name
		}
		if tv.ServiceName == "" {
			tv.ServiceName = old.ServiceName
		}
		if tv.MAC == "" {
			tv.MAC = old.MAC
		}
		if tv.PairedAt.IsZero() {
			tv.PairedAt = old.PairedAt
		}
		if tv.LastConnectedAt.IsZero() {
			tv.LastConnectedAt = old.LastConnectedAt
		}
		s.Tvs[i] = tv
		return
	}
	s.Tvs = append(s.Tvs, tv)
	sort.Slice(s.Tvs, func(i, j int) bool { return s.Tvs[i].Host < s.Tvs[j].Host })
}

// Remove deletes the TV with the given host. It reports whether one was
// found.
func (s *RemoteState) Remove(host string) bool {
	for i, tv := range s.Tvs {
		if tv.Host == host {
			s.Tvs = append(s.Tvs[:i], s.Tvs[i+1:]...)
			if s.LastHost == host {
				s.LastHost = ""
			}
			return true
		}
	}
	return false
}

// StateStore manages persistence of the client state to a JSON file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a new state store.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Path returns the state file path.
func (s *StateStore) Path() string { return s.path }

// Save persists the state to disk. The file is replaced atomically.
func (s *StateStore) Save(state *RemoteState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	state.SavedAt = time.Now()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the state from disk.
// Returns an empty state if the file doesn't exist.
func (s *StateStore) Load() (*RemoteState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &RemoteState{Version: StateVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	state := &RemoteState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Update loads the state, applies fn and saves the result.
func (s *StateStore) Update(fn func(*RemoteState)) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	fn(state)
	return s.Save(state)
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
