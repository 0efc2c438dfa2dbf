package icon

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFaceOrder(t *testing.T) {
	dir := t.TempDir()
	missing := File(filepath.Join(dir, "missing.ttf"))

	garbagePath := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbagePath, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	garbage := File(garbagePath)

	goodPath := filepath.Join(dir, "good.ttf")
	if err := os.WriteFile(goodPath, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	good := File(goodPath)
	embedded := Embedded("goregular", goregular.TTF)

	tests := []struct {
		name    string
		sources []FontSource
		want    string
	}{
		{"empty list", nil, "default"},
		{"all failing", []FontSource{missing, garbage}, "default"},
		{"skips failures", []FontSource{missing, garbage, good}, goodPath},
		{"first success wins", []FontSource{embedded, good}, "goregular"},
		{"file before embedded", []FontSource{missing, good, embedded}, goodPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadFace(tt.sources, 24)
			if f.Source != tt.want {
				t.Errorf("Source = %q, want %q", f.Source, tt.want)
			}
			if f.Size != 24 {
				t.Errorf("Size = %v, want 24", f.Size)
			}
		})
	}
}

func TestDefaultFaceIsBitmap(t *testing.T) {
	f := defaultFace(36)
	if f.Outline() {
		t.Error("default face reports outline data")
	}
	if f.face != basicfont.Face7x13 {
		t.Error("default face is not basicfont.Face7x13")
	}
	if _, err := f.shaper(); err == nil {
		t.Error("expected an error shaping with a bitmap face")
	}
}

func TestBuiltinFontsLoad(t *testing.T) {
	f := BuiltinFonts().load()
	for name, face := range map[string]*Face{"tamil": f.tamil, "title": f.title, "subtitle": f.subtitle} {
		if !face.Outline() {
			t.Errorf("%s: builtin font fell back to the bitmap default", name)
		}
	}
	if f.title.Source != "gobold" {
		t.Errorf("title source = %q, want gobold", f.title.Source)
	}
	if f.tamil.Size != tamilSize || f.title.Size != titleSize || f.subtitle.Size != subtitleSize {
		t.Errorf("sizes = %v/%v/%v", f.tamil.Size, f.title.Size, f.subtitle.Size)
	}
}

func TestDefaultFontsEndWithBuiltins(t *testing.T) {
	set := DefaultFonts()
	for name, list := range map[string][]FontSource{"tamil": set.Tamil, "title": set.Title, "subtitle": set.Subtitle} {
		if len(list) < 2 {
			t.Fatalf("%s: expected system candidates before the builtin font, got %v", name, list)
		}
		if _, ok := list[0].(fileSource); !ok {
			t.Errorf("%s: first candidate = %v, want a system file", name, list[0])
		}
		if _, ok := list[len(list)-1].(embeddedSource); !ok {
			t.Errorf("%s: last candidate = %v, want an embedded font", name, list[len(list)-1])
		}
	}
}
