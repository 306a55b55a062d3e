package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the tunable gameplay numbers. Geometry (tile size, blueprint)
// is fixed; everything here can be overridden from a YAML file and re-applied
// to a running session.
type Settings struct {
	PlayerSpeed        float64 `yaml:"player_speed"`        // px/s
	GhostSpeed         float64 `yaml:"ghost_speed"`         // px/s
	FrightenedSpeed    float64 `yaml:"frightened_speed"`    // px/s while frightened
	FrightenedDuration float64 `yaml:"frightened_duration"` // seconds
	EngagementRange    int     `yaml:"engagement_range"`    // tiles
	Lives              int     `yaml:"lives"`
}

// DefaultSettings returns the classic tuning: speeds in tiles-per-second
// terms are 5.0 / 4.2 / 3.2 at a 24px tile.
func DefaultSettings() Settings {
	return Settings{
		PlayerSpeed:        5.0 * TileSize,
		GhostSpeed:         4.2 * TileSize,
		FrightenedSpeed:    3.2 * TileSize,
		FrightenedDuration: 8,
		EngagementRange:    6,
		Lives:              3,
	}
}

// LoadSettings reads a YAML settings file over the defaults, so a partial
// file only overrides what it names.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: unmarshal %s: %w", path, err)
	}
	s.normalise()
	return s, nil
}

// normalise replaces non-positive values with their defaults.
func (s *Settings) normalise() {
	def := DefaultSettings()
	if s.PlayerSpeed <= 0 {
		s.PlayerSpeed = def.PlayerSpeed
	}
	if s.GhostSpeed <= 0 {
		s.GhostSpeed = def.GhostSpeed
	}
	if s.FrightenedSpeed <= 0 {
		s.FrightenedSpeed = def.FrightenedSpeed
	}
	if s.FrightenedDuration <= 0 {
		s.FrightenedDuration = def.FrightenedDuration
	}
	if s.EngagementRange <= 0 {
		s.EngagementRange = def.EngagementRange
	}
	if s.Lives <= 0 {
		s.Lives = def.Lives
	}
}
