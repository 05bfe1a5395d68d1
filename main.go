package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/godrays/internal/config"
	"github.com/iburimskiy/godrays/internal/game"
	"github.com/iburimskiy/godrays/internal/settings"
)

var (
	configFlag  = flag.String("config", "", "Effect config YAML (default: last opened, then built-in defaults)")
	widthFlag   = flag.Int("width", config.WindowWidth, "Initial window width")
	heightFlag  = flag.Int("height", config.WindowHeight, "Initial window height")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	prefs, err := settings.Open("godrays")
	if err != nil {
		log.Printf("[Main] Warning: %v (preferences will not persist)", err)
	}

	cfg := config.Default()
	path := *configFlag
	if path == "" {
		path = prefs.Preferences().ConfigPath
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			if *configFlag != "" {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			log.Printf("[Main] Warning: %v (using defaults)", err)
		} else {
			cfg = loaded
		}
	}
	// an explicit config file is taken as written
	if *configFlag == "" {
		cfg = prefs.Preferences().Apply(cfg)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, prefs)
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
