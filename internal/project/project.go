// Package project provides project file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"panel-router/internal/twin"
)

// File represents a panel router project file (.panelproj).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	// The digital twin snapshot: enclosure, library, instances,
	// connections, and wires.
	Snapshot json.RawMessage `json:"snapshot"`
}

// New creates a new project file around a store snapshot.
func New(name string, store *twin.Store) (*File, error) {
	snap, err := store.ExportSnapshot()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
		Snapshot: snap,
	}, nil
}

// Load loads a project from a .panelproj file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parsing project %s: %w", path, err)
	}
	if len(proj.Snapshot) == 0 {
		return nil, fmt.Errorf("project %s has no snapshot", path)
	}
	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Restore loads the project's snapshot into the given store. Restore is
// all-or-nothing: on error the store is untouched.
func (p *File) Restore(store *twin.Store) error {
	return store.LoadSnapshot(p.Snapshot)
}

// Update replaces the project's snapshot with the store's current state.
func (p *File) Update(store *twin.Store) error {
	snap, err := store.ExportSnapshot()
	if err != nil {
		return err
	}
	p.Snapshot = snap
	p.Modified = time.Now()
	return nil
}
