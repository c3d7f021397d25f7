package raffle

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir as <timestamp>_<label>.png.
func (w *Widget) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots captures screen once for every queued label. Called at
// the end of Draw.
func (w *Widget) flushScreenshots(screen *ebiten.Image) {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	if err := os.MkdirAll(w.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[raffle] screenshot: mkdir %s: %v\n", w.ScreenshotDir, err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	prefix := time.Now().Format("20060102_150405") + "_"
	for _, label := range w.screenshotQueue {
		path := filepath.Join(w.ScreenshotDir, prefix+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[raffle] %v\n", err)
			continue
		}
		w.debugf("screenshot %s", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels, as returned by
// ReadPixels, to a straight-alpha image.
func unpremultiply(pixels []byte, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := min(len(pixels), len(img.Pix)) &^ 3
	copy(img.Pix, pixels[:n])
	for px := img.Pix[:n]; len(px) >= 4; px = px[4:] {
		a := int(px[3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			px[c] = uint8(min(int(px[c])*255/a, 255))
		}
	}
	return img
}

// writePNG saves img to path, creating or truncating the file.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot %s: %w", path, cerr)
		}
	}()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps every other
// rune to '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
