//go:build windows

package icon

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

func systemFontDir() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return "C:/Windows/Fonts"
	}
	defer k.Close()

	root, _, err := k.GetStringValue("SystemRoot")
	if err != nil || root == "" {
		return "C:/Windows/Fonts"
	}
	return filepath.Join(strings.ReplaceAll(root, "\\", "/"), "Fonts")
}
