// Package settings persists the viewer's preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/iburimskiy/godrays/internal/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences survive restarts. Animation choices made in the viewer
// override the animation block of a loaded effect config.
type Preferences struct {
	Animate    bool    `yaml:"animate"`
	Speed      float64 `yaml:"speed"`
	ConfigPath string  `yaml:"configPath"`
	// AnimationSet is true once the viewer changed Animate or Speed.
	AnimationSet bool `yaml:"animationSet"`
	// Saved is false until preferences have been written at least once.
	Saved bool `yaml:"saved"`
}

// DefaultPreferences returns the preferences used on first launch.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Animate: true,
		Speed:   10,
	}
}

const (
	prefsObject   = "preferences"
	prefsProperty = "viewer"
)

// Manager loads and saves Preferences through gdata.
// A nil gdata manager keeps preferences in memory only.
type Manager struct {
	store *gdata.Manager
	prefs *Preferences
}

// Open creates the gdata store for appName. On failure the returned manager
// still works in memory and the error is reported.
func Open(appName string) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		m, _ := NewManager(nil)
		return m, fmt.Errorf("failed to open preferences store: %w", err)
	}
	return NewManager(store)
}

// NewManager wraps store and loads saved preferences, falling back to defaults.
func NewManager(store *gdata.Manager) (*Manager, error) {
	m := &Manager{
		store: store,
		prefs: DefaultPreferences(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return m, nil
}

// Load replaces the in-memory preferences with the stored ones.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(prefsObject, prefsProperty) {
		m.prefs = DefaultPreferences()
		return nil
	}

	data, err := m.store.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		m.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	m.prefs = loaded
	log.Printf("[Settings] Preferences loaded")
	return nil
}

// Save writes the preferences. Without a store it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	m.prefs.Saved = true
	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[Settings] Preferences saved")
	return nil
}

// Preferences returns the current preferences.
func (m *Manager) Preferences() *Preferences {
	return m.prefs
}

// SetAnimate records the animation toggle. Call Save to persist it.
func (m *Manager) SetAnimate(on bool) {
	m.prefs.Animate = on
	m.prefs.AnimationSet = true
}

// SetSpeed records the playback speed. Negative values are stored as 0.
func (m *Manager) SetSpeed(speed float64) {
	m.prefs.Speed = max(speed, 0)
	m.prefs.AnimationSet = true
}

// SetConfigPath records the last opened effect config.
func (m *Manager) SetConfigPath(path string) {
	m.prefs.ConfigPath = path
}

// Apply overrides the animation settings of cfg when the viewer chose them.
// A config path alone leaves cfg untouched.
func (p *Preferences) Apply(cfg config.Effect) config.Effect {
	if !p.AnimationSet {
		return cfg
	}
	cfg.Animation.Animate = p.Animate
	cfg.Animation.Speed = p.Speed
	return cfg
}
