package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/godrays/internal/palette"
)

var defaultBackground = color.RGBA{R: 10, G: 12, B: 20, A: 255}

// backgroundColor parses the configured background, falling back to a dark fill.
func backgroundColor(literal string) color.Color {
	if literal == "" {
		return defaultBackground
	}
	return palette.Parse(literal).NRGBA()
}

// rayColor is the color the picker starts from: the single ray color if one is set.
func rayColor(spec palette.Spec) color.Color {
	if s, ok := spec.(palette.Single); ok {
		return palette.Parse(s.Color).NRGBA()
	}
	return palette.White.NRGBA()
}

// formatClock formats shader time as MM:SS
func formatClock(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds * float64(time.Second))
	minutes := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
