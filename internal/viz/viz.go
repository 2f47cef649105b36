// Package viz renders the heatmap and word cloud images for a profile.
package viz

import (
	"log/slog"
	"os"

	"github.com/fogleman/gg"
)

// Renderer draws analysis images into a static directory.
type Renderer struct {
	fontPath string
	log      *slog.Logger
}

// New creates a Renderer. fontPath may point at a missing file; drawing
// then falls back to gg's built-in bitmap font at a fixed size.
func New(fontPath string, log *slog.Logger) *Renderer {
	return &Renderer{fontPath: fontPath, log: log}
}

// setFont loads the configured font at the given point size. Returns false
// when the font is unavailable and the context keeps its current face.
func (r *Renderer) setFont(dc *gg.Context, points float64) bool {
	if r.fontPath == "" {
		return false
	}
	if err := dc.LoadFontFace(r.fontPath, points); err != nil {
		return false
	}
	return true
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
