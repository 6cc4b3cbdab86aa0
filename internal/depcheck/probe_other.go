//go:build !windows && !linux && !darwin

package depcheck

// resolveLibraryImpl always fails: no dynamic loader on this platform.
func resolveLibraryImpl(string) bool {
	return false
}
