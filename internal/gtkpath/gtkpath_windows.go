package gtkpath

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// Prepare registers the first GTK runtime directory that validates with
// the Windows loader and prepends it to PATH. Returns the accepted
// directory, or "" when no candidate validated.
func Prepare() string {
	for _, dir := range collectCandidates(os.Getenv, dirExists, globDirs) {
		if !hasPangoDLL(dir, globDirs, fileExists) {
			continue
		}
		// Best effort: PATH prepending below covers loaders that do
		// not honor AddDllDirectory.
		if p, err := windows.UTF16PtrFromString(dir); err == nil {
			_, _ = windows.AddDllDirectory(p)
		}
		prependToPath(dir)
		return dir
	}
	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func globDirs(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	return matches
}

// prependToPath puts dir at the front of PATH unless already listed.
func prependToPath(dir string) {
	current := os.Getenv("PATH")
	for _, entry := range strings.Split(current, ";") {
		if strings.EqualFold(entry, dir) {
			return
		}
	}
	os.Setenv("PATH", dir+";"+current)
}
