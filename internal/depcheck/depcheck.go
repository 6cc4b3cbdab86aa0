// Package depcheck verifies at startup that the native Pango runtime
// needed for PDF export is present and loadable, and produces
// platform-specific remediation guidance when it is not.
//
// The check is non-fatal: every failure is converted into a
// (false, message) result and PDF export is simply reported unavailable.
// It is safe to run repeatedly; each run redoes the whole sequence.
package depcheck

import (
	"errors"
	"runtime"
	"strings"

	"github.com/jsairdrop/pangocheck/internal/gtkpath"
	"github.com/jsairdrop/pangocheck/internal/pango"
)

// Result is the full outcome of one availability check.
type Result struct {
	Available bool     `yaml:"available"            json:"available"`
	Message   string   `yaml:"message"              json:"message"`
	AddedPath string   `yaml:"added_path,omitempty" json:"added_path,omitempty"`
	Missing   []string `yaml:"missing,omitempty"    json:"missing,omitempty"`
	Platform  string   `yaml:"platform"             json:"platform"`
}

// pangoBinding is what the checker needs from a loaded Pango library.
type pangoBinding interface {
	Name() string
	Version() (int, error)
	Close() error
}

// Overridable in tests, following the platform-registration pattern used
// elsewhere in this repo.
var (
	prepareEnv  = gtkpath.Prepare
	loadBinding = defaultLoadBinding
	checkGOOS   = runtime.GOOS
)

func defaultLoadBinding() (pangoBinding, error) {
	b, err := pango.Load()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Run performs the availability check: widen the search paths, probe the
// native library names, then actually load Pango and call its version
// query. It never returns an error and never panics.
func Run() Result {
	return run(checkGOOS)
}

func run(goos string) (res Result) {
	res = Result{Platform: goos}
	defer func() {
		if r := recover(); r != nil {
			res.Available = false
			res.Message = genericFailure(r)
		}
	}()

	res.AddedPath = prepareEnv()
	res.Missing = missingLibraries(probe(goos))

	b, err := loadBinding()
	if err != nil {
		res.Message = failureMessage(goos, err, res.AddedPath, res.Missing)
		return res
	}
	version, err := b.Version()
	_ = b.Close()
	if err != nil {
		res.Message = failureMessage(goos, err, res.AddedPath, res.Missing)
		return res
	}

	res.Available = true
	res.Message = successMessage(pango.FormatVersion(version))
	return res
}

// Check is the plain programmatic contract: availability plus a
// human-readable message.
func Check() (bool, string) {
	r := Run()
	return r.Available, r.Message
}

// failureMessage classifies a load error and picks the message shape:
// boxed diagnostic for recognized native-dependency causes, a short
// install hint when no loader exists, a one-liner otherwise.
func failureMessage(goos string, err error, addedPath string, missing []string) string {
	var le *pango.LoadError
	if errors.As(err, &le) && le.Kind == pango.KindUnsupported {
		return bindingMissingMessage(goos)
	}
	if recognizedCause(err) {
		return composeDiagnostic(goos, addedPath, missing)
	}
	return shortFailure(err.Error(), missing)
}

// recognizedCause prefers the structured error kind; the substring scan
// is a best-effort fallback for wrapped or foreign loader errors.
func recognizedCause(err error) bool {
	var le *pango.LoadError
	if errors.As(err, &le) {
		switch le.Kind {
		case pango.KindNotFound, pango.KindSymbolMissing, pango.KindCallFailed:
			return true
		}
	}
	return mentionsGTKFamily(err.Error())
}

func mentionsGTKFamily(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "pango") ||
		strings.Contains(lower, "gobject") ||
		strings.Contains(lower, "gdk")
}
