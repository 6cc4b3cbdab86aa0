package gtkpath

import "os"

// homebrewLibDirs covers both common install prefixes: /opt/homebrew
// (Apple Silicon) and /usr/local (Intel).
var homebrewLibDirs = []string{"/opt/homebrew/lib", "/usr/local/lib"}

// Prepare prepends the Homebrew library directories to DYLD_LIBRARY_PATH
// when present and not already listed. Returns the updated combined
// value, or "" when nothing changed.
func Prepare() string {
	current := os.Getenv("DYLD_LIBRARY_PATH")
	merged, changed := prependMissing(current, ":", homebrewLibDirs, dirExists)
	if !changed {
		return ""
	}
	os.Setenv("DYLD_LIBRARY_PATH", merged)
	return merged
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
