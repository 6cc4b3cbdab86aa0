// Package pango dynamically loads the native Pango text-layout library
// and exposes its trivial version query. It is the load surface the
// dependency checker exercises to decide whether PDF export can work.
//
// Load failures are reported as *LoadError with a closed Kind enum so
// callers can classify structurally instead of grepping error text.
package pango

import "fmt"

// ErrorKind classifies why loading or querying Pango failed.
type ErrorKind int

const (
	// KindNotFound means no candidate library name could be opened.
	KindNotFound ErrorKind = iota
	// KindSymbolMissing means the library loaded but pango_version is absent.
	KindSymbolMissing
	// KindCallFailed means the version query itself failed.
	KindCallFailed
	// KindUnsupported means this platform has no usable dynamic loader.
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindSymbolMissing:
		return "symbol-missing"
	case KindCallFailed:
		return "call-failed"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// LoadError is a structured Pango load failure.
type LoadError struct {
	Kind    ErrorKind
	Library string // candidate name, or the family name when none resolved
	Err     error  // underlying loader error, may be nil
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pango: %s (%s): %v", e.Kind, e.Library, e.Err)
	}
	return fmt.Sprintf("pango: %s (%s)", e.Kind, e.Library)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CandidateNames returns the library file names tried for goos, most
// specific first. Windows names are what the GTK runtime installer ships;
// POSIX names are versioned sonames first per the usual packaging.
func CandidateNames(goos string) []string {
	switch goos {
	case "windows":
		return []string{"libpango-1.0-0.dll", "pango-1.0-0.dll"}
	case "darwin":
		return []string{"libpango-1.0.dylib", "libpango-1.0.0.dylib"}
	default:
		return []string{"libpango-1.0.so.0", "libpango-1.0.so"}
	}
}

// FormatVersion decodes Pango's version encoding
// (major*10000 + minor*100 + micro) into a dotted string.
func FormatVersion(v int) string {
	return fmt.Sprintf("%d.%d.%d", v/10000, (v/100)%100, v%100)
}
