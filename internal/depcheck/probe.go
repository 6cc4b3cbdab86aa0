package depcheck

import "runtime"

// ProbeStatus is the resolution outcome for one symbolic library key.
type ProbeStatus struct {
	Key      string   `yaml:"key"      json:"key"`
	Variants []string `yaml:"variants" json:"variants"`
	Found    bool     `yaml:"found"    json:"found"`
}

// libTarget maps a symbolic key to the acceptable library file names on
// one platform.
type libTarget struct {
	key      string
	variants []string
}

// libTargets returns the four libraries PDF export depends on, in
// reporting order. Windows file names differ from the POSIX sonames.
func libTargets(goos string) []libTarget {
	switch goos {
	case "windows":
		return []libTarget{
			{"pango", []string{"pango-1.0-0.dll", "libpango-1.0-0.dll"}},
			{"gobject", []string{"gobject-2.0-0.dll", "libgobject-2.0-0.dll"}},
			{"gdk-pixbuf", []string{"gdk_pixbuf-2.0-0.dll", "libgdk_pixbuf-2.0-0.dll"}},
			{"cairo", []string{"cairo-2.dll", "libcairo-2.dll"}},
		}
	case "darwin":
		return []libTarget{
			{"pango", []string{"libpango-1.0.dylib", "libpango-1.0.0.dylib"}},
			{"gobject", []string{"libgobject-2.0.dylib", "libgobject-2.0.0.dylib"}},
			{"gdk-pixbuf", []string{"libgdk_pixbuf-2.0.dylib", "libgdk_pixbuf-2.0.0.dylib"}},
			{"cairo", []string{"libcairo.dylib", "libcairo.2.dylib"}},
		}
	default:
		return []libTarget{
			{"pango", []string{"libpango-1.0.so.0", "libpango-1.0.so"}},
			{"gobject", []string{"libgobject-2.0.so.0", "libgobject-2.0.so"}},
			{"gdk-pixbuf", []string{"libgdk_pixbuf-2.0.so.0", "libgdk_pixbuf-2.0.so"}},
			{"cairo", []string{"libcairo.so.2", "libcairo.so"}},
		}
	}
}

// resolveLibrary reports whether the platform loader can open name.
// Package variable so tests can stub resolution.
var resolveLibrary = resolveLibraryImpl

// Probe checks each required native library against the platform's
// standard shared-library name resolution. Advisory only: the verdict
// on availability comes from actually loading Pango.
func Probe() []ProbeStatus {
	return probe(runtime.GOOS)
}

func probe(goos string) []ProbeStatus {
	targets := libTargets(goos)
	statuses := make([]ProbeStatus, 0, len(targets))
	for _, t := range targets {
		found := false
		for _, name := range t.variants {
			if resolveLibrary(name) {
				found = true
				break
			}
		}
		statuses = append(statuses, ProbeStatus{Key: t.key, Variants: t.variants, Found: found})
	}
	return statuses
}

// missingLibraries derives the ordered list of unresolved keys.
func missingLibraries(statuses []ProbeStatus) []string {
	var missing []string
	for _, s := range statuses {
		if !s.Found {
			missing = append(missing, s.Key)
		}
	}
	return missing
}
