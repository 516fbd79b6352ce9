// Package simulation provides configuration for the raycaster.
// Values can come from a JSON file, a .env file and the environment, in that order.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// ErrInvalidConfig is returned by Validate for values the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds all tunables for the raycaster
type Config struct {
	// Window and frame cadence
	Window WindowConfig `json:"window"`

	// Player pose and motion
	Player PlayerConfig `json:"player"`

	// Ray fan
	Rays RayConfig `json:"rays"`

	// On-screen overlay
	HUD HUDConfig `json:"hud"`
}

// WindowConfig defines the logical screen and update rate
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	TPS    int    `json:"tps"` // Updates per second
}

// PlayerConfig defines the starting pose and how the player moves
type PlayerConfig struct {
	StartX      float64 `json:"start_x"`
	StartY      float64 `json:"start_y"`
	StartAngle  float64 `json:"start_angle"`  // Radians
	Speed       float64 `json:"speed"`        // Pixels per move
	TurnStep    float64 `json:"turn_step"`    // Radians per turn
	Radius      float64 `json:"radius"`       // Drawn disc radius
	ProbeLength float64 `json:"probe_length"` // Collision probe length
}

// RayConfig defines the ray fan cast each frame. Length and FOVDegrees also
// set the player's view distance and field of view.
type RayConfig struct {
	Count      int     `json:"count"`
	Length     float64 `json:"length"`
	FOVDegrees float64 `json:"fov_degrees"`
	HitMode    string  `json:"hit_mode"` // "nearest" or "first"
}

// HUDConfig toggles the text overlay
type HUDConfig struct {
	Enabled bool `json:"enabled"`
}

// DefaultConfig returns the classic 1000x800 setup: ten rays over 60 degrees
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "Raycasting Example",
			TPS:    60,
		},
		Player: PlayerConfig{
			StartX:      500,
			StartY:      400,
			StartAngle:  0,
			Speed:       5,
			TurnStep:    0.1,
			Radius:      10,
			ProbeLength: 15,
		},
		Rays: RayConfig{
			Count:      10,
			Length:     800,
			FOVDegrees: 60,
			HitMode:    "nearest",
		},
		HUD: HUDConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// Validate checks every value the frame loop divides by or draws with.
// It is meant to run once at startup so bad settings never reach a frame.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.Window.TPS)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"start x", c.Player.StartX},
		{"start y", c.Player.StartY},
		{"start angle", c.Player.StartAngle},
		{"speed", c.Player.Speed},
		{"turn step", c.Player.TurnStep},
		{"radius", c.Player.Radius},
		{"probe length", c.Player.ProbeLength},
		{"view distance", c.Rays.Length},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: player %s must be finite, got %v", ErrInvalidConfig, v.name, v.value)
		}
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("%w: negative player speed %v", ErrInvalidConfig, c.Player.Speed)
	}
	if c.Player.ProbeLength < c.Player.Speed {
		return fmt.Errorf("%w: probe length %v shorter than speed %v", ErrInvalidConfig, c.Player.ProbeLength, c.Player.Speed)
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("%w: player radius must be positive, got %v", ErrInvalidConfig, c.Player.Radius)
	}
	if _, err := c.Fan(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Fan builds the ray fan described by the config
func (c *Config) Fan() (raycast.Fan, error) {
	fan, err := raycast.NewFan(c.Rays.Count, c.Rays.Length, c.Rays.FOVDegrees)
	if err != nil {
		return raycast.Fan{}, err
	}
	mode, err := raycast.ParseHitMode(c.Rays.HitMode)
	if err != nil {
		return raycast.Fan{}, err
	}
	fan.Mode = mode
	return fan, nil
}
