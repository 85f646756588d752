package demo

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/LTSACH/graphics-course/internal/engine/renderer"
	"github.com/LTSACH/graphics-course/internal/engine/texture"
	"github.com/LTSACH/graphics-course/internal/logger"
)

// demoTexture uploads the configured texture file, or a built-in
// checkerboard when no path is set. A configured but unreadable file is a
// startup error, not a silent fallback.
func demoTexture(path string) (uint32, error) {
	if path == "" {
		logger.Debug("no texture configured, using checkerboard")
		img := texture.Checkerboard(256, 8,
			color.RGBA{R: 235, G: 235, B: 235, A: 255},
			color.RGBA{R: 190, G: 60, B: 95, A: 255},
		)
		return renderer.UploadTexture(img), nil
	}

	img, err := texture.Load(path)
	if err != nil {
		return 0, err
	}

	bounds := img.Bounds()
	logger.Info("texture loaded",
		zap.String("path", path),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	)
	return renderer.UploadTexture(img), nil
}
