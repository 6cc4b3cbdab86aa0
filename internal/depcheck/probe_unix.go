//go:build linux || darwin

package depcheck

import "github.com/ebitengine/purego"

// resolveLibraryImpl probes name through dlopen and releases the handle
// immediately; only resolvability matters here.
func resolveLibraryImpl(name string) bool {
	handle, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil || handle == 0 {
		return false
	}
	_ = purego.Dlclose(handle)
	return true
}
