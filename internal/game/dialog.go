package game

import (
	"errors"
	"log"

	"github.com/iburimskiy/godrays/internal/config"
	"github.com/iburimskiy/godrays/internal/palette"
	"github.com/ncruces/zenity"
)

func (g *Game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Effect Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	log.Printf("[Game] Selected config %s", filename)
	return g.loadConfig(filename)
}

func (g *Game) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	g.prefs.SetConfigPath(path)
	if err := g.prefs.Save(); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
	g.lastErr = nil
	g.Reload(cfg)
	return nil
}

// pickColorDialog switches the rays to a single color chosen by the user.
func (g *Game) pickColorDialog() error {
	c, err := zenity.SelectColor(
		zenity.Title("Ray Color"),
		zenity.Color(rayColor(g.cfg.RaysColor.Spec)),
		zenity.ShowPalette(),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg := g.cfg
	cfg.RaysColor.Spec = palette.Single{Color: palette.Hex(c)}
	log.Printf("[Game] Ray color set to %s", palette.Hex(c))
	g.lastErr = nil
	g.Reload(cfg)
	return nil
}
