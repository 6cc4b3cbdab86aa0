//go:build linux || darwin

package pango

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// Binding is a handle to a loaded Pango library.
type Binding struct {
	handle uintptr
	name   string
}

// Load opens the first candidate Pango library that resolves.
// RTLD_GLOBAL matches what higher-level renderers expect: Pango's
// symbols must be visible to the cairo/gobject libraries loaded after it.
func Load() (*Binding, error) {
	var errs error
	for _, name := range CandidateNames(runtime.GOOS) {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		return &Binding{handle: handle, name: name}, nil
	}
	return nil, &LoadError{Kind: KindNotFound, Library: "pango-1.0", Err: errs}
}

// Name returns the library name that resolved.
func (b *Binding) Name() string { return b.name }

// Version calls pango_version() and returns its encoded version number.
func (b *Binding) Version() (version int, err error) {
	addr, symErr := purego.Dlsym(b.handle, "pango_version")
	if symErr != nil || addr == 0 {
		return 0, &LoadError{Kind: KindSymbolMissing, Library: b.name, Err: symErr}
	}

	// RegisterFunc panics on signature trouble; fold that into the
	// call-failed kind rather than crashing a health check.
	defer func() {
		if r := recover(); r != nil {
			version = 0
			err = &LoadError{Kind: KindCallFailed, Library: b.name, Err: fmt.Errorf("%v", r)}
		}
	}()

	var pangoVersion func() int32
	purego.RegisterFunc(&pangoVersion, addr)
	return int(pangoVersion()), nil
}

// Close releases the library handle. The search-path mutations made
// before loading are process-wide and are not undone.
func (b *Binding) Close() error {
	if b.handle == 0 {
		return nil
	}
	err := purego.Dlclose(b.handle)
	b.handle = 0
	return err
}
