package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/godrays/internal/palette"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Animation.Animate {
		t.Error("Animation.Animate: got false, want true")
	}
	if cfg.Animation.Speed != 10 {
		t.Errorf("Animation.Speed: got %v, want 10", cfg.Animation.Speed)
	}
	if cfg.Intensity != 50 || cfg.Rays != 30 || cfg.Reach != 40 || cfg.Position != 80 {
		t.Errorf("percentages: got %v/%v/%v/%v, want 50/30/40/80",
			cfg.Intensity, cfg.Rays, cfg.Reach, cfg.Position)
	}
	if cfg.RaysColor.Spec != nil {
		t.Errorf("RaysColor.Spec: got %T, want nil", cfg.RaysColor.Spec)
	}
}

func TestParseKeepsDefaultsForAbsentKeys(t *testing.T) {
	cfg, err := Parse([]byte("intensity: 90\nanimation:\n  animate: false\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Intensity != 90 {
		t.Errorf("Intensity: got %v, want 90", cfg.Intensity)
	}
	if cfg.Rays != DefaultRays || cfg.Reach != DefaultReach || cfg.Position != DefaultPosition {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Animation.Animate {
		t.Error("Animation.Animate: got true, want false")
	}
	if cfg.Animation.Speed != DefaultSpeed {
		t.Errorf("Animation.Speed: got %v, want %v", cfg.Animation.Speed, DefaultSpeed)
	}
}

func TestParseExplicitZeroSpeed(t *testing.T) {
	cfg, err := Parse([]byte("animation:\n  speed: 0\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Animation.Speed != 0 {
		t.Errorf("Animation.Speed: got %v, want 0", cfg.Animation.Speed)
	}
}

func TestParseRaysColorModes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want palette.Spec
	}{
		{"single", "raysColor: {mode: single, color: '#fff'}", palette.Single{Color: "#fff"}},
		{"multi", "raysColor: {mode: multi, color1: '#f00', color2: '#00f'}", palette.Multi{Color1: "#f00", Color2: "#00f"}},
		{"random", "raysColor: {mode: random}", palette.Random{}},
		{"unknown mode", "raysColor: {mode: rainbow}", nil},
		{"null", "raysColor:", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if cfg.RaysColor.Spec != tt.want {
				t.Errorf("Spec: got %#v, want %#v", cfg.RaysColor.Spec, tt.want)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("intensity: [1, 2")); err == nil {
		t.Error("Parse() expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "multi.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Animation.Animate || cfg.Animation.Speed != 20 {
		t.Errorf("Animation: got %+v, want {false 20}", cfg.Animation)
	}
	want := palette.Multi{Color1: "#ff0000", Color2: "rgba(0, 0, 255, 0.5)"}
	if cfg.RaysColor.Spec != want {
		t.Errorf("Spec: got %#v, want %#v", cfg.RaysColor.Spec, want)
	}
	if cfg.BackgroundColor != "#101018" {
		t.Errorf("BackgroundColor: got %q", cfg.BackgroundColor)
	}
	if cfg.Intensity != 70 || cfg.Position != 30 || cfg.Rays != DefaultRays {
		t.Errorf("numbers: got %+v", cfg)
	}
	if cfg.Style["title"] != "Sunrise" {
		t.Errorf("Style[title]: got %q, want Sunrise", cfg.Style["title"])
	}
	if got := cfg.RadiusPixels(); got != 16 {
		t.Errorf("RadiusPixels(): got %v, want 16", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestRadiusPixels(t *testing.T) {
	tests := []struct {
		radius string
		want   float64
	}{
		{"", 0},
		{"12", 12},
		{"12px", 12},
		{" 8.5px ", 8.5},
		{"1rem", 0},
		{"-4px", 0},
	}
	for _, tt := range tests {
		cfg := Effect{Radius: tt.radius}
		if got := cfg.RadiusPixels(); got != tt.want {
			t.Errorf("RadiusPixels(%q) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}
