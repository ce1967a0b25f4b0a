package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	pc, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	want := DefaultPlatformerConfig()
	if pc.Physics != want.Physics || pc.Body != want.Body || pc.Floor != want.Floor {
		t.Errorf("embedded platformer world differs from hardcoded:\n got %+v\nwant %+v", pc, want)
	}
	if pc.View != want.View || pc.Gameplay != want.Gameplay {
		t.Errorf("embedded platformer view differs: got %+v / %+v", pc.View, pc.Gameplay)
	}
	if len(pc.Platforms) != 0 {
		t.Errorf("default platformer should have no extra platforms, got %d", len(pc.Platforms))
	}

	sc, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if !reflect.DeepEqual(sc, DefaultSnakeConfig()) {
		t.Errorf("embedded snake differs from hardcoded:\n got %+v\nwant %+v", sc, DefaultSnakeConfig())
	}

	mc, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if err := mc.Validate(); err != nil {
		t.Errorf("embedded maze invalid: %v", err)
	}
	if err := DefaultMazeConfig().Validate(); err != nil {
		t.Errorf("hardcoded maze invalid: %v", err)
	}
}

func TestPlatformerParams(t *testing.T) {
	p := DefaultPlatformerConfig().Params()
	if p.Gravity != 0.1 || p.RunSpeed != 2 || p.JumpImpulse != 3 || p.GroundY != -105 || p.TopSnapOffset != 15 {
		t.Errorf("unexpected params %+v", p)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte(`
arena: {width: 6, height: 5}
start: {x: 1, y: 1}
gameplay: {move_every_ticks: 4, food_every_ticks: 30, max_food: 1}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s): %v", path, err)
	}
	if cfg.Arena.Width != 6 || cfg.Arena.Height != 5 {
		t.Errorf("arena = %+v, expected 6x5", cfg.Arena)
	}
	if cfg.Gameplay.MoveEveryTicks != 4 {
		t.Errorf("move_every_ticks = %d, expected 4", cfg.Gameplay.MoveEveryTicks)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected parse error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("move_every_ticks: 0\nlayout: ['#P#']\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadMaze(invalid) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestUserConfigOverridesEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := []byte("move_every_ticks: 2\nlayout:\n  - '#####'\n  - '#P..#'\n  - '#####'\n")
	if err := os.WriteFile(filepath.Join(dir, "maze.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.MoveEveryTicks != 2 || len(cfg.Layout) != 3 {
		t.Errorf("user config not picked up: %+v", cfg)
	}
}

func TestPlatformerValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
	}{
		{"negative gravity", func(c *PlatformerConfig) { c.Physics.Gravity = -1 }},
		{"zero body width", func(c *PlatformerConfig) { c.Body.Width = 0 }},
		{"zero block size", func(c *PlatformerConfig) { c.Floor.BlockSize = 0 }},
		{"zero view scale", func(c *PlatformerConfig) { c.View.PixelsPerRow = 0 }},
		{"negative platform", func(c *PlatformerConfig) { c.Platforms = []PlatformRow{{Blocks: -1}} }},
	}

	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMazeValidate(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		ok     bool
	}{
		{"valid", []string{"####", "#P.#", "####"}, true},
		{"ragged", []string{"####", "#P.", "####"}, false},
		{"no start", []string{"###", "#.#", "###"}, false},
		{"two starts", []string{"#####", "#PP.#", "#####"}, false},
		{"no pellets", []string{"#####", "#P  #", "#####"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := MazeConfig{Layout: tc.layout, MoveEveryTicks: 1}.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, ok expected %v", err, tc.ok)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("HARD")
	if err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(HARD) = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}

	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultSnakeConfig().Difficulty)

	tests := []struct {
		score    int
		expected int
	}{
		{0, 9},
		{15, 6}, // level 0.5 removes round(2.5) = 3 ticks
		{30, 4},
		{300, 4},
	}
	for _, tc := range tests {
		if got := d.Interval(9, 3, tc.score, 0); got != tc.expected {
			t.Errorf("Interval(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	d.SetEnabled(false)
	if got := d.Interval(9, 3, 300, 0); got != 9 {
		t.Errorf("disabled Interval = %d, expected 9", got)
	}

	d.SetEnabled(true)
	if got := d.Interval(2, 0, 300, 0); got != 1 {
		t.Errorf("Interval floor = %d, expected 1", got)
	}
}
