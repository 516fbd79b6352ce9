package simulation

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override config values
const (
	EnvWidth     = "RAYCASTER_WIDTH"
	EnvHeight    = "RAYCASTER_HEIGHT"
	EnvTPS       = "RAYCASTER_TPS"
	EnvSpeed     = "RAYCASTER_SPEED"
	EnvRayCount  = "RAYCASTER_RAYS"
	EnvRayLength = "RAYCASTER_RAY_LENGTH"
	EnvFOV       = "RAYCASTER_FOV"
	EnvHitMode   = "RAYCASTER_HIT_MODE"
	EnvHUD       = "RAYCASTER_HUD"
)

// LoadEnv loads the given .env files (missing files are skipped) and applies
// RAYCASTER_* variables on top of c. Variables already set in the process
// environment win over the files.
func LoadEnv(c *Config, files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
		log.Printf("Loaded environment from %s", file)
	}

	return c.applyEnv(os.Getenv)
}

// applyEnv overrides fields from lookup; empty values are ignored
func (c *Config) applyEnv(lookup func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Window.Width},
		{EnvHeight, &c.Window.Height},
		{EnvTPS, &c.Window.TPS},
		{EnvRayCount, &c.Rays.Count},
	}
	for _, v := range ints {
		raw := lookup(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvSpeed, &c.Player.Speed},
		{EnvRayLength, &c.Rays.Length},
		{EnvFOV, &c.Rays.FOVDegrees},
	}
	for _, v := range floats {
		raw := lookup(v.key)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = f
	}

	if mode := lookup(EnvHitMode); mode != "" {
		c.Rays.HitMode = mode
	}
	if raw := lookup(EnvHUD); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHUD, err)
		}
		c.HUD.Enabled = enabled
	}

	return nil
}
