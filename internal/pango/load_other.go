//go:build !windows && !linux && !darwin

package pango

// Binding is never constructed on platforms without a dynamic loader.
type Binding struct{}

// Load reports that dynamic loading is unavailable on this platform.
func Load() (*Binding, error) {
	return nil, &LoadError{Kind: KindUnsupported, Library: "pango-1.0"}
}

func (b *Binding) Name() string          { return "" }
func (b *Binding) Version() (int, error) { return 0, &LoadError{Kind: KindUnsupported, Library: "pango-1.0"} }
func (b *Binding) Close() error          { return nil }
