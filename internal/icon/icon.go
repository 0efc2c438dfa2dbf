// Package icon draws the TWAD application icon: a masked blue disc with a
// white inner circle, Tamil and English text, and a water drop.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/fogleman/gg"
)

// ErrImagingUnavailable is returned when the renderer has no image encoder.
var ErrImagingUnavailable = errors.New("icon: imaging support not available")

// Encoder writes an image in some file format.
type Encoder interface {
	Encode(w io.Writer, m image.Image) error
}

// Renderer draws the icon and writes it to OutputPath.
type Renderer struct {
	OutputPath string
	Fonts      FontSet
	Encoder    Encoder
}

// New returns a renderer with the fixed output path, the platform font
// candidates and a PNG encoder.
func New() *Renderer {
	return &Renderer{
		OutputPath: OutputPath,
		Fonts:      DefaultFonts(),
		Encoder:    &png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// Run draws the icon and writes it to OutputPath. The file is only written
// once the whole image has been encoded; on any error nothing is written.
// The output directory must already exist.
func (r *Renderer) Run() (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("icon: render: %v", rec)
		}
	}()

	if r.Encoder == nil {
		return ErrImagingUnavailable
	}

	img := r.Draw()
	buffer := bytes.NewBuffer(nil)
	if err := r.Encoder.Encode(buffer, img); err != nil {
		return fmt.Errorf("icon: encode: %w", err)
	}
	if err := os.WriteFile(r.OutputPath, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("icon: write: %w", err)
	}
	return nil
}

// Draw renders the icon in memory.
func (r *Renderer) Draw() *image.NRGBA {
	dc := gg.NewContext(Size, Size)
	dc.SetColor(backgroundColor)
	dc.Clear()

	mask := circleMask(Size, center, center, maskRadius)

	dc.SetColor(circleColor)
	dc.DrawCircle(center, center, innerRadius)
	dc.Fill()

	f := r.Fonts.load()
	drawText(dc, f.tamil, tamilText, center, tamilY, textColor)
	drawText(dc, f.title, titleText, center, titleY, textColor)
	drawText(dc, f.subtitle, subtitleText, center, subtitleY, subtitleColor)

	drawDrop(dc)

	return putAlpha(dc.Image(), mask)
}

// drawText draws text as a block of centre-aligned lines whose vertical
// middle is at cy.
func drawText(dc *gg.Context, f *Face, text string, cx, cy float64, col imgcolor.Color) {
	dc.SetFontFace(f.face)
	dc.SetColor(col)

	m := f.face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	lines := strings.Split(text, "\n")
	advance := ascent + descent + lineSpacing
	top := cy - (float64(len(lines))*advance-lineSpacing)/2

	for i, line := range lines {
		baseline := top + float64(i)*advance + ascent
		if f.Outline() && needsShaping(line) {
			if sh, err := f.shaper(); err == nil {
				if sh.drawLine(dc, line, cx, baseline) == nil {
					continue
				}
			}
		}
		dc.DrawStringAnchored(line, cx, baseline, 0.5, 0)
	}
}

func drawDrop(dc *gg.Context) {
	dc.SetColor(dropColor)
	dc.DrawEllipse(dropCenterX, dropCenterY, dropRadiusX, dropRadiusY)
	dc.Fill()

	dc.MoveTo(dropTip[0][0], dropTip[0][1])
	dc.LineTo(dropTip[1][0], dropTip[1][1])
	dc.LineTo(dropTip[2][0], dropTip[2][1])
	dc.ClosePath()
	dc.Fill()
}
