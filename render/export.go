package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"
)

// exportScale upsamples terminal-resolution frames so exported images are
// legible outside the terminal
const exportScale = 2

// ExportPNG writes the frame to a PNG file, upscaled with nearest-neighbor
// interpolation to keep pixel edges crisp
func ExportPNG(frame *Frame, path string) error {
	src := image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c := frame.At(x, y)
			src.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, frame.Width()*exportScale, frame.Height()*exportScale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportName builds a timestamped filename for a capture
func ExportName(t time.Time) string {
	return fmt.Sprintf("fractal-%s.png", t.Format("20060102-150405"))
}
