package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Library stores a collection of component definitions.
type Library struct {
	Definitions []*Definition `json:"definitions"`
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{Definitions: make([]*Definition, 0)}
}

// StandardLibrary returns a library pre-loaded with the standard definitions.
func StandardLibrary() *Library {
	lib := NewLibrary()
	for _, def := range StandardDefinitions {
		lib.Add(def)
	}
	return lib
}

// Add adds or replaces a definition in the library.
func (lib *Library) Add(def *Definition) {
	for i, d := range lib.Definitions {
		if d.ID == def.ID {
			lib.Definitions[i] = def
			return
		}
	}
	lib.Definitions = append(lib.Definitions, def)
	lib.Sort()
}

// Get returns a definition by ID, or nil if not found.
func (lib *Library) Get(id string) *Definition {
	for _, d := range lib.Definitions {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Remove removes a definition by ID.
func (lib *Library) Remove(id string) bool {
	for i, d := range lib.Definitions {
		if d.ID == id {
			lib.Definitions = append(lib.Definitions[:i], lib.Definitions[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of definitions.
func (lib *Library) Count() int {
	return len(lib.Definitions)
}

// Sort orders definitions by ID for stable listings and serialization.
func (lib *Library) Sort() {
	sort.Slice(lib.Definitions, func(i, j int) bool {
		return lib.Definitions[i].ID < lib.Definitions[j].ID
	})
}

// LoadFile loads a library from a JSON file, validating every definition.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing library %s: %w", path, err)
	}
	for _, def := range lib.Definitions {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("library %s: %w", path, err)
		}
	}
	return &lib, nil
}

// SaveFile writes the library to a JSON file.
func (lib *Library) SaveFile(path string) error {
	lib.Sort()
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
