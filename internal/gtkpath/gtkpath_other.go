//go:build !windows && !darwin

package gtkpath

// Prepare is a no-op outside Windows and macOS: the dynamic loader on
// Linux already consults ldconfig and LD_LIBRARY_PATH.
func Prepare() string {
	return ""
}
