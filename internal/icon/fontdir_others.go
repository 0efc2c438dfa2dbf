//go:build !windows

package icon

// systemFontDir returns "" where there is no single system font directory;
// the fixed paths in DefaultFonts cover those platforms.
func systemFontDir() string {
	return ""
}
