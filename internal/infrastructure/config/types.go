package config

import (
	"fmt"
	"time"
)

// SideTracking selects when a directional hitbox forgets its flagged sides
// during one tick's obstacle scan
type SideTracking string

const (
	// SideTrackingAccumulate keeps flagged sides across obstacles until a
	// whole-box miss
	SideTrackingAccumulate SideTracking = "accumulate"
	// SideTrackingPerObstacle clears flagged sides before every obstacle test
	SideTrackingPerObstacle SideTracking = "per_obstacle"
)

// Valid reports whether s is a known policy
func (s SideTracking) Valid() bool {
	return s == SideTrackingAccumulate || s == SideTrackingPerObstacle
}

// Settings is the root config for settings.yaml
type Settings struct {
	Display   DisplayConfig   `yaml:"display"`
	Debug     DebugConfig     `yaml:"debug"`
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	FPS       FPSConfig       `yaml:"fps"`
	Seed      int64           `yaml:"seed"` // 0 picks a time based seed
}

type DisplayConfig struct {
	Title       string `yaml:"title"`
	WindowScale int    `yaml:"windowScale"`
	TPS         int    `yaml:"tps"`
	Background  string `yaml:"background"`
}

type DebugConfig struct {
	ShowFPS    bool `yaml:"showFPS"`
	ShowBounds bool `yaml:"showBounds"`
	ShowGrid   bool `yaml:"showGrid"`
}

type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HitboxMargin float64 `yaml:"hitboxMargin"`
	MaxGravity   float64 `yaml:"maxGravity"`
	JumpImpulse  float64 `yaml:"jumpImpulse"`
	WalkSpeed    float64 `yaml:"walkSpeed"`
	RunBoost     float64 `yaml:"runBoost"`
}

type CollisionConfig struct {
	SideTracking SideTracking `yaml:"sideTracking"`
}

type FPSConfig struct {
	SampleInterval time.Duration `yaml:"sampleInterval"`
}

// DefaultSettings returns the settings used for any key missing from
// settings.yaml
func DefaultSettings() *Settings {
	return &Settings{
		Display: DisplayConfig{
			Title:       "Side Scroller",
			WindowScale: 1,
			TPS:         60,
			Background:  "#1a1a2e",
		},
		Debug: DebugConfig{ShowFPS: true},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			HitboxMargin: 8,
			MaxGravity:   7,
			JumpImpulse:  15,
			WalkSpeed:    2,
			RunBoost:     2.4,
		},
		Collision: CollisionConfig{SideTracking: SideTrackingAccumulate},
		FPS:       FPSConfig{SampleInterval: 500 * time.Millisecond},
	}
}

// Validate checks values the simulation cannot run with
func (s *Settings) Validate() error {
	if s.Display.TPS <= 0 {
		return fmt.Errorf("display.tps must be positive, got %d", s.Display.TPS)
	}
	if s.Display.WindowScale <= 0 {
		return fmt.Errorf("display.windowScale must be positive, got %d", s.Display.WindowScale)
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %gx%g", s.Player.Width, s.Player.Height)
	}
	if s.Player.HitboxMargin < 0 || s.Player.HitboxMargin >= s.Player.Width || s.Player.HitboxMargin >= s.Player.Height {
		return fmt.Errorf("player.hitboxMargin %g does not fit the player", s.Player.HitboxMargin)
	}
	if !s.Collision.SideTracking.Valid() {
		return fmt.Errorf("unknown collision.sideTracking %q", s.Collision.SideTracking)
	}
	if s.FPS.SampleInterval <= 0 || s.FPS.SampleInterval > time.Second {
		return fmt.Errorf("fps.sampleInterval must be in (0, 1s], got %s", s.FPS.SampleInterval)
	}
	return nil
}
