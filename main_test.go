package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"twadicon/internal/icon"
)

func newTestRenderer(t *testing.T, path string) *icon.Renderer {
	t.Helper()
	color.NoColor = true
	r := icon.New()
	r.Fonts = icon.BuiltinFonts()
	r.OutputPath = path
	return r
}

func TestRunSuccessIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	var out bytes.Buffer
	run(&out, newTestRenderer(t, path))

	if out.Len() != 0 {
		t.Errorf("expected no console output, got %q", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("icon not written: %v", err)
	}
}

func TestRunReportsFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *icon.Renderer)
		wantOut []string
	}{
		{
			name:    "missing encoder",
			setup:   func(r *icon.Renderer) { r.Encoder = nil },
			wantOut: []string{"Imaging support not available", "go get"},
		},
		{
			name: "missing output directory",
			setup: func(r *icon.Renderer) {
				r.OutputPath = filepath.Join(filepath.Dir(r.OutputPath), "missing", "icon.png")
			},
			wantOut: []string{"Error creating icon", "missing", "HTML method"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t, filepath.Join(t.TempDir(), "icon.png"))
			tt.setup(r)

			var out bytes.Buffer
			run(&out, r)

			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q does not contain %q", out.String(), want)
				}
			}
			if _, err := os.Stat(r.OutputPath); !os.IsNotExist(err) {
				t.Errorf("expected no file at %s, stat err = %v", r.OutputPath, err)
			}
		})
	}
}

func TestReportFailureIncludesErrorText(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	reportFailure(&out, os.ErrPermission)

	if !strings.Contains(out.String(), os.ErrPermission.Error()) {
		t.Errorf("output %q does not contain the error text", out.String())
	}
	if strings.Contains(out.String(), "Imaging support") {
		t.Errorf("generic error reported as missing imaging support: %q", out.String())
	}
}
