package icon

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

var shapingLanguage = language.NewLanguage("ta")

// shaper lays out complex-script lines with HarfBuzz and fills the glyph
// outlines on a gg context. Not safe for concurrent use.
type shaper struct {
	outlines *sfnt.Font
	face     *gtfont.Face
	size     float64

	buf sfnt.Buffer
	hb  shaping.HarfbuzzShaper
}

func newShaper(data []byte, size float64) (*shaper, error) {
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("icon: parse outlines: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icon: parse shaping tables: %w", err)
	}
	return &shaper{outlines: outlines, face: face, size: size}, nil
}

// shaper returns the face's shaper, creating it on first use.
func (f *Face) shaper() (*shaper, error) {
	if !f.Outline() {
		return nil, fmt.Errorf("icon: %s is a bitmap face", f.Source)
	}
	if f.sh == nil && f.shErr == nil {
		f.sh, f.shErr = newShaper(f.data, f.Size)
	}
	return f.sh, f.shErr
}

func (s *shaper) shape(line string) []shaping.Glyph {
	runes := []rune(norm.NFC.String(line))
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      floatToFixed(s.size),
		Script:    scriptOf(runes),
		Language:  shapingLanguage,
	})
	return out.Glyphs
}

// width returns the advance of a shaped line in pixels.
func width(glyphs []shaping.Glyph) float64 {
	var w fixed.Int26_6
	for _, g := range glyphs {
		w += g.Advance
	}
	return fixedToFloat(w)
}

// drawLine shapes line and fills it centred on cx with its baseline at y.
// Nothing is drawn when any glyph outline fails to load.
func (s *shaper) drawLine(dc *gg.Context, line string, cx, y float64) error {
	glyphs := s.shape(line)
	ppem := floatToFixed(s.size)

	outlines := make([]sfnt.Segments, len(glyphs))
	for i, g := range glyphs {
		segs, err := s.outlines.LoadGlyph(&s.buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			return fmt.Errorf("icon: load glyph %d: %w", g.GlyphID, err)
		}
		// LoadGlyph reuses its backing array on the next call.
		outlines[i] = append(sfnt.Segments(nil), segs...)
	}

	x := cx - width(glyphs)/2
	for i, g := range glyphs {
		ox := x + fixedToFloat(g.XOffset)
		// Shaping offsets grow upwards, outlines grow downwards.
		oy := y - fixedToFloat(g.YOffset)
		for _, seg := range outlines[i] {
			p := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				dc.MoveTo(ox+fixedToFloat(p[0].X), oy+fixedToFloat(p[0].Y))
			case sfnt.SegmentOpLineTo:
				dc.LineTo(ox+fixedToFloat(p[0].X), oy+fixedToFloat(p[0].Y))
			case sfnt.SegmentOpQuadTo:
				dc.QuadraticTo(
					ox+fixedToFloat(p[0].X), oy+fixedToFloat(p[0].Y),
					ox+fixedToFloat(p[1].X), oy+fixedToFloat(p[1].Y))
			case sfnt.SegmentOpCubeTo:
				dc.CubicTo(
					ox+fixedToFloat(p[0].X), oy+fixedToFloat(p[0].Y),
					ox+fixedToFloat(p[1].X), oy+fixedToFloat(p[1].Y),
					ox+fixedToFloat(p[2].X), oy+fixedToFloat(p[2].Y))
			}
		}
		if len(outlines[i]) > 0 {
			dc.ClosePath()
		}
		x += fixedToFloat(g.Advance)
	}
	dc.Fill()
	return nil
}

// needsShaping reports whether line has runes outside the Latin and
// common scripts.
func needsShaping(line string) bool {
	for _, r := range line {
		switch language.LookupScript(r) {
		case language.Latin, language.Common, language.Inherited:
		default:
			return true
		}
	}
	return false
}

func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch sc := language.LookupScript(r); sc {
		case language.Common, language.Inherited:
		default:
			return sc
		}
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
