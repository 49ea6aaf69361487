package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// File names looked up by LoadLibrary inside the data directory.
const (
	TowersFile       = "towers.json"
	EnemiesFile      = "enemies.json"
	WavesFile        = "waves.json"
	DifficultiesFile = "difficulties.json"
	MapsFile         = "maps.json"
)

type wavesFile struct {
	Waves      []WaveDefinition `json:"waves"`
	ExtraWaves []WaveDefinition `json:"extra_waves"`
}

// LoadLibrary reads all definition files from dir. Files that are absent
// fall back to the built-in tables so a data directory may override only
// part of the game data. The result is validated before it is returned.
func LoadLibrary(dir string) (*Library, error) {
	lib := DefaultLibrary()

	var towers []TowerDefinition
	found, err := readJSON(filepath.Join(dir, TowersFile), &towers)
	if err != nil {
		return nil, err
	}
	if found {
		lib.Towers = make(map[string]TowerDefinition, len(towers))
		lib.TowerOrder = nil
		for _, def := range towers {
			lib.Towers[def.ID] = def
			lib.TowerOrder = append(lib.TowerOrder, def.ID)
		}
	}

	var enemies []EnemyDefinition
	if found, err = readJSON(filepath.Join(dir, EnemiesFile), &enemies); err != nil {
		return nil, err
	}
	if found {
		lib.Enemies = make(map[string]EnemyDefinition, len(enemies))
		for _, def := range enemies {
			lib.Enemies[def.ID] = def
		}
	}

	var waves wavesFile
	if found, err = readJSON(filepath.Join(dir, WavesFile), &waves); err != nil {
		return nil, err
	}
	if found {
		lib.Waves = waves.Waves
		lib.ExtraWaves = waves.ExtraWaves
	}

	var profiles []DifficultyProfile
	if found, err = readJSON(filepath.Join(dir, DifficultiesFile), &profiles); err != nil {
		return nil, err
	}
	if found {
		lib.Difficulties = make(map[string]DifficultyProfile, len(profiles))
		for _, p := range profiles {
			lib.Difficulties[p.ID] = p
		}
	}

	var maps []MapDefinition
	if found, err = readJSON(filepath.Join(dir, MapsFile), &maps); err != nil {
		return nil, err
	}
	if found {
		lib.Maps = make(map[string]MapDefinition, len(maps))
		for _, m := range maps {
			lib.Maps[m.ID] = m
		}
	}

	lib.normalize()
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("validate definitions in %s: %w", dir, err)
	}

	slog.Info("definitions loaded",
		"dir", dir,
		"towers", len(lib.Towers),
		"enemies", len(lib.Enemies),
		"waves", len(lib.Waves),
		"extra_waves", len(lib.ExtraWaves),
		"maps", len(lib.Maps),
	)
	return lib, nil
}

// readJSON decodes path into v. A missing file is not an error.
func readJSON(path string, v any) (bool, error) {
	file, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return true, nil
}
