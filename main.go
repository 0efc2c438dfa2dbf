package main

import (
	"errors"
	"io"

	"github.com/fatih/color"

	"twadicon/internal/icon"
)

var (
	// Console colors
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow)
)

func main() {
	run(color.Output, icon.New())
}

// run renders the icon and reports any failure to w. Failures are never
// propagated; the process exits normally either way.
func run(w io.Writer, r *icon.Renderer) {
	if err := r.Run(); err != nil {
		reportFailure(w, err)
	}
}

func reportFailure(w io.Writer, err error) {
	if errors.Is(err, icon.ErrImagingUnavailable) {
		red.Fprintln(w, "✗ Imaging support not available")
		yellow.Fprintln(w, "Install with: go get github.com/fogleman/gg")
		return
	}
	red.Fprintf(w, "✗ Error creating icon: %s\n", err)
	yellow.Fprintln(w, "💡 Use the HTML method instead - open twad_icon_with_tamil.html in browser")
}
