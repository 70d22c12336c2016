package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"keynes-cross/internal/config"
)

// Preset is a named scenario file found in the presets directory.
type Preset struct {
	ID       string
	File     string
	Scenario config.ScenarioConfig
}

// DefaultPresetDir is where presets live relative to the repository root.
// Callers own any override (viper in cmd/api, flags in cmd/cli).
const DefaultPresetDir = "examples/scenarios"

// ListPresets loads every *.yaml scenario in dir, sorted by ID.
// Files that fail to parse are returned in skipped rather than aborting the listing.
func ListPresets(dir string) (presets []Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	skipped = map[string]error{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		p, err := LoadPreset(dir, strings.TrimSuffix(e.Name(), ".yaml"))
		if err != nil {
			skipped[e.Name()] = err
			continue
		}
		presets = append(presets, *p)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, skipped, nil
}

// LoadPreset reads dir/<id>.yaml. The ID is the file name without extension,
// e.g. "1_simulation_1".
func LoadPreset(dir, id string) (*Preset, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("invalid preset id %q", id)
	}
	path := filepath.Join(dir, id+".yaml")
	sc, err := config.LoadScenarioFile(path)
	if err != nil {
		return nil, err
	}
	if sc.Model == "" {
		return nil, fmt.Errorf("preset %s: scenario.model is required", id)
	}
	if sc.Name == "" {
		sc.Name = id
	}
	return &Preset{ID: id, File: path, Scenario: sc}, nil
}
