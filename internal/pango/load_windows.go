package pango

import (
	"errors"
	"runtime"
	"syscall"

	"golang.org/x/sys/windows"
)

// Binding is a handle to a loaded Pango DLL.
type Binding struct {
	handle windows.Handle
	name   string
}

// Load opens the first candidate Pango DLL that resolves.
// LOAD_LIBRARY_SEARCH_USER_DIRS makes directories registered through
// AddDllDirectory (see internal/gtkpath) participate in the search.
func Load() (*Binding, error) {
	const flags = windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS | windows.LOAD_LIBRARY_SEARCH_USER_DIRS

	var errs error
	for _, name := range CandidateNames(runtime.GOOS) {
		handle, err := windows.LoadLibraryEx(name, 0, flags)
		if err != nil || handle == 0 {
			errs = errors.Join(errs, err)
			continue
		}
		return &Binding{handle: handle, name: name}, nil
	}
	return nil, &LoadError{Kind: KindNotFound, Library: "pango-1.0", Err: errs}
}

// Name returns the DLL name that resolved.
func (b *Binding) Name() string { return b.name }

// Version calls pango_version() and returns its encoded version number.
func (b *Binding) Version() (int, error) {
	addr, err := windows.GetProcAddress(b.handle, "pango_version")
	if err != nil || addr == 0 {
		return 0, &LoadError{Kind: KindSymbolMissing, Library: b.name, Err: err}
	}
	r1, _, _ := syscall.SyscallN(addr)
	return int(int32(r1)), nil
}

// Close releases the DLL handle. The search-path mutations made before
// loading are process-wide and are not undone.
func (b *Binding) Close() error {
	if b.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(b.handle)
	b.handle = 0
	return err
}
