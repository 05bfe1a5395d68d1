package kage

import (
	_ "embed"

	"github.com/iburimskiy/godrays/internal/render"
)

//go:embed godrays.kage
var godRaysSource []byte

// GodRays returns the god rays program. The text is passed to the compiler unmodified.
func GodRays() render.ShaderSource {
	return render.ShaderSource{Fragment: godRaysSource}
}
