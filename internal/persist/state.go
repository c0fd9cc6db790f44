// Package persist defines the save format of a world, and a store of named
// save slots.
//
// A State is a set of tables: per-entity components keyed by component name
// and addressed by entity handle, and singletons keyed by name. Values are
// kept as raw JSON so that the game decides how each is decoded, and so that
// names it no longer knows can be skipped.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/borkshop/rampage/internal/ecs"
)

// Version is the save format version written by this program.
const Version = 1

// Record is one entity's value of a component.
type Record struct {
	Entity ecs.Handle      `json:"entity"`
	Value  json.RawMessage `json:"value"`
}

// State is a saved world.
type State struct {
	Version    int                        `json:"version" jsonschema:"required"`
	Session    uuid.UUID                  `json:"session" jsonschema:"required,description=Identifies one playthrough across saves"`
	SavedAt    time.Time                  `json:"saved_at"`
	Components map[string][]Record        `json:"components" jsonschema:"description=Per-entity tables keyed by component name"`
	Singletons map[string]json.RawMessage `json:"singletons" jsonschema:"description=World-wide values keyed by name"`
}

// New returns an empty state for a new session.
func New() *State {
	return &State{
		Version:    Version,
		Session:    uuid.New(),
		Components: make(map[string][]Record),
		Singletons: make(map[string]json.RawMessage),
	}
}

// AddComponent appends an entity's value to a component table.
func (st *State) AddComponent(name string, h ecs.Handle, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %v of %v: %w", name, h, err)
	}
	st.Components[name] = append(st.Components[name], Record{Entity: h, Value: data})
	return nil
}

// SetSingleton stores a named singleton.
func (st *State) SetSingleton(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %v: %w", name, err)
	}
	st.Singletons[name] = data
	return nil
}

// Singleton decodes a named singleton into v; ok is false if there is none.
func (st *State) Singleton(name string, v any) (ok bool, err error) {
	data, ok := st.Singletons[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("decode %v: %w", name, err)
	}
	return true, nil
}

// ComponentNames returns the names of all component tables, sorted.
func (st *State) ComponentNames() []string {
	names := make([]string, 0, len(st.Components))
	for name := range st.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SingletonNames returns the names of all singletons, sorted.
func (st *State) SingletonNames() []string {
	names := make([]string, 0, len(st.Singletons))
	for name := range st.Singletons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode writes a state as JSON.
func Encode(w io.Writer, st *State) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return nil
}

// Decode reads a state written by Encode; it rejects states from a newer
// format version.
func Decode(r io.Reader) (*State, error) {
	var st State
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if st.Version > Version {
		return nil, fmt.Errorf("decode state: unsupported version %d", st.Version)
	}
	if st.Components == nil {
		st.Components = make(map[string][]Record)
	}
	if st.Singletons == nil {
		st.Singletons = make(map[string]json.RawMessage)
	}
	return &st, nil
}
