package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Face is a font resolved for one text role.
type Face struct {
	// Source names where the face came from.
	Source string
	Size   float64

	face font.Face
	// data holds the sfnt bytes for outline fonts. It is nil for the bitmap default.
	data []byte

	sh    *shaper
	shErr error
}

// Outline reports whether the face was loaded from an outline font and can
// be shaped.
func (f *Face) Outline() bool {
	return f.data != nil
}

// FontSource is one candidate location for a font.
type FontSource interface {
	Load(size float64) (*Face, error)
	String() string
}

type fileSource string

// File returns a FontSource that reads a TrueType font from path.
func File(path string) FontSource {
	return fileSource(path)
}

func (s fileSource) Load(size float64) (*Face, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return nil, err
	}
	return parseFace(string(s), data, size)
}

func (s fileSource) String() string { return string(s) }

type embeddedSource struct {
	name string
	data []byte
}

// Embedded returns a FontSource backed by font bytes compiled into the binary.
func Embedded(name string, data []byte) FontSource {
	return embeddedSource{name: name, data: data}
}

func (s embeddedSource) Load(size float64) (*Face, error) {
	return parseFace(s.name, s.data, size)
}

func (s embeddedSource) String() string { return s.name }

func parseFace(source string, data []byte, size float64) (*Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("icon: parse font %s: %w", source, err)
	}
	return &Face{
		Source: source,
		Size:   size,
		face:   truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}),
		data:   data,
	}, nil
}

// defaultFace is the last resort for every role and cannot fail.
func defaultFace(size float64) *Face {
	return &Face{Source: "default", Size: size, face: basicfont.Face7x13}
}

// loadFace tries sources in order and returns the first face that loads,
// or the bitmap default when none do.
func loadFace(sources []FontSource, size float64) *Face {
	for _, src := range sources {
		if f, err := src.Load(size); err == nil {
			return f
		}
	}
	return defaultFace(size)
}

// FontSet holds the ordered candidates for each text role.
type FontSet struct {
	Tamil    []FontSource
	Title    []FontSource
	Subtitle []FontSource
}

type faces struct {
	tamil, title, subtitle *Face
}

func (s FontSet) load() faces {
	return faces{
		tamil:    loadFace(s.Tamil, tamilSize),
		title:    loadFace(s.Title, titleSize),
		subtitle: loadFace(s.Subtitle, subtitleSize),
	}
}

// DefaultFonts returns the system font candidates for the current platform
// followed by the embedded Go fonts.
func DefaultFonts() FontSet {
	set := FontSet{
		Tamil:    []FontSource{File("/System/Library/Fonts/Arial Unicode MS.ttf")},
		Title:    []FontSource{File("/System/Library/Fonts/Arial Bold.ttf")},
		Subtitle: []FontSource{File("/System/Library/Fonts/Arial.ttf")},
	}

	if dir := systemFontDir(); dir != "" {
		set.Tamil = append(set.Tamil, File(filepath.Join(dir, "Nirmala.ttf")))
		set.Title = append(set.Title, File(filepath.Join(dir, "arialbd.ttf")))
		set.Subtitle = append(set.Subtitle, File(filepath.Join(dir, "arial.ttf")))
	}

	const noto = "/usr/share/fonts/truetype/noto"
	set.Tamil = append(set.Tamil, File(filepath.Join(noto, "NotoSansTamil-Regular.ttf")))
	set.Title = append(set.Title, File(filepath.Join(noto, "NotoSans-Bold.ttf")))
	set.Subtitle = append(set.Subtitle, File(filepath.Join(noto, "NotoSans-Regular.ttf")))

	builtin := BuiltinFonts()
	set.Tamil = append(set.Tamil, builtin.Tamil...)
	set.Title = append(set.Title, builtin.Title...)
	set.Subtitle = append(set.Subtitle, builtin.Subtitle...)
	return set
}

// BuiltinFonts returns only the fonts compiled into the binary, so output
// does not depend on what is installed.
func BuiltinFonts() FontSet {
	regular := Embedded("goregular", goregular.TTF)
	return FontSet{
		Tamil:    []FontSource{regular},
		Title:    []FontSource{Embedded("gobold", gobold.TTF)},
		Subtitle: []FontSource{regular},
	}
}
