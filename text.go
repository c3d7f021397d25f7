package raffle

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Default font sizes for the widget's text.
const (
	numberFontSize  = 96
	buttonFontSize  = 28
	messageFontSize = 20
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("raffle: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Fonts are the faces the widget draws its number, button and caption with.
type Fonts struct {
	Number  *TTFFont
	Button  *TTFFont
	Message *TTFFont
}

// DefaultFonts loads the Go font family at the widget's default sizes.
func DefaultFonts() (*Fonts, error) {
	number, err := LoadTTFFont(gobold.TTF, numberFontSize)
	if err != nil {
		return nil, err
	}
	button, err := LoadTTFFont(gobold.TTF, buttonFontSize)
	if err != nil {
		return nil, err
	}
	message, err := LoadTTFFont(goregular.TTF, messageFontSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{Number: number, Button: button, Message: message}, nil
}

// SetFonts replaces the faces used by Draw. Nil restores the defaults on the
// next Draw.
func (w *Widget) SetFonts(f *Fonts) { w.fonts = f }

// ensureFonts loads the default fonts on first use.
func (w *Widget) ensureFonts() *Fonts {
	if w.fonts != nil {
		return w.fonts
	}
	f, err := DefaultFonts()
	if err != nil {
		w.debugf("font load failed: %v", err)
		return nil
	}
	w.fonts = f
	return f
}

// drawTextCentered draws s centered on (cx, cy), scaled about its center.
func drawTextCentered(dst *ebiten.Image, s string, f *TTFFont, cx, cy, scale float64, c Color) {
	if s == "" || f == nil || scale <= 0 || c.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = f.lh
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, s, f.face, op)
}
