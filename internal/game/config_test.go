package game

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettingsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	return path
}

func TestLoadSettings_PartialFileOverlaysDefaults(t *testing.T) {
	path := writeSettingsFile(t, "player_speed: 150\nlives: 5\n")
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got.PlayerSpeed != 150 {
		t.Fatalf("PlayerSpeed = %v, want 150", got.PlayerSpeed)
	}
	if got.Lives != 5 {
		t.Fatalf("Lives = %d, want 5", got.Lives)
	}
	def := DefaultSettings()
	if got.GhostSpeed != def.GhostSpeed || got.FrightenedDuration != def.FrightenedDuration {
		t.Fatalf("unnamed fields should keep defaults, got %+v", got)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if got != DefaultSettings() {
		t.Fatalf("settings on error = %+v, want defaults", got)
	}
}

func TestLoadSettings_BadYAML(t *testing.T) {
	path := writeSettingsFile(t, "player_speed: [not a number\n")
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected an unmarshal error")
	}
}

func TestLoadSettings_NonPositiveValuesNormalised(t *testing.T) {
	path := writeSettingsFile(t, "ghost_speed: -3\nlives: 0\n")
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	def := DefaultSettings()
	if got.GhostSpeed != def.GhostSpeed {
		t.Fatalf("GhostSpeed = %v, want default %v", got.GhostSpeed, def.GhostSpeed)
	}
	if got.Lives != def.Lives {
		t.Fatalf("Lives = %d, want default %d", got.Lives, def.Lives)
	}
}
