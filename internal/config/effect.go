// Package config holds the window constants and the user-facing effect
// configuration loaded from YAML.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iburimskiy/godrays/internal/palette"
	"gopkg.in/yaml.v3"
)

// Animation controls whether shader time advances and how fast.
type Animation struct {
	Animate bool    `yaml:"animate"`
	Speed   float64 `yaml:"speed"`
}

// Effect is the full set of options for one god rays surface.
// Percentages are expected in [0,100] but are not validated.
type Effect struct {
	Animation       Animation         `yaml:"animation"`
	RaysColor       RaysColor         `yaml:"raysColor"`
	BackgroundColor string            `yaml:"backgroundColor"`
	Intensity       float64           `yaml:"intensity"`
	Rays            float64           `yaml:"rays"`
	Reach           float64           `yaml:"reach"`
	Position        float64           `yaml:"position"`
	Radius          string            `yaml:"radius"`
	Style           map[string]string `yaml:"style"`
}

// Default returns the configuration used when nothing is specified.
func Default() Effect {
	return Effect{
		Animation: Animation{Animate: true, Speed: DefaultSpeed},
		Intensity: DefaultIntensity,
		Rays:      DefaultRays,
		Reach:     DefaultReach,
		Position:  DefaultPosition,
	}
}

// Parse decodes YAML on top of Default, so absent keys keep their defaults.
func Parse(data []byte) (Effect, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal effect config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Effect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read effect config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] Loaded effect config from %s", path)
	return cfg, nil
}

// RadiusPixels interprets Radius as a pixel length ("12", "12px").
// Empty or unparsable values give 0.
func (e Effect) RadiusPixels() float64 {
	s := strings.TrimSpace(e.Radius)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// RaysColor wraps the palette spec so it can be decoded from a tagged YAML map.
type RaysColor struct {
	Spec palette.Spec
}

type raysColorDoc struct {
	Mode   string `yaml:"mode"`
	Color  string `yaml:"color"`
	Color1 string `yaml:"color1"`
	Color2 string `yaml:"color2"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (rc *RaysColor) UnmarshalYAML(node *yaml.Node) error {
	var doc raysColorDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("raysColor: %w", err)
	}

	switch doc.Mode {
	case "single":
		rc.Spec = palette.Single{Color: doc.Color}
	case "multi":
		rc.Spec = palette.Multi{Color1: doc.Color1, Color2: doc.Color2}
	case "random":
		rc.Spec = palette.Random{}
	default:
		log.Printf("[Config] Warning: unknown raysColor mode %q (using default colors)", doc.Mode)
		rc.Spec = nil
	}
	return nil
}
