package depcheck

import "golang.org/x/sys/windows"

// resolveLibraryImpl probes name through LoadLibraryEx and frees the
// handle immediately. LOAD_LIBRARY_SEARCH_USER_DIRS includes the
// directories registered via AddDllDirectory by internal/gtkpath.
func resolveLibraryImpl(name string) bool {
	const flags = windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS | windows.LOAD_LIBRARY_SEARCH_USER_DIRS
	handle, err := windows.LoadLibraryEx(name, 0, flags)
	if err != nil || handle == 0 {
		return false
	}
	_ = windows.FreeLibrary(handle)
	return true
}
