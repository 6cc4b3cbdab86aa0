package depcheck

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsairdrop/pangocheck/internal/pango"
)

// fakeBinding satisfies pangoBinding without touching a real loader.
type fakeBinding struct {
	version int
	err     error
	closed  bool
}

func (f *fakeBinding) Name() string          { return "libpango-1.0.so.0" }
func (f *fakeBinding) Version() (int, error) { return f.version, f.err }
func (f *fakeBinding) Close() error          { f.closed = true; return nil }

func stubCheck(t *testing.T, goos string, load func() (pangoBinding, error), resolve func(string) bool) {
	t.Helper()
	origPrepare, origLoad, origGOOS, origResolve := prepareEnv, loadBinding, checkGOOS, resolveLibrary
	prepareEnv = func() string { return "" }
	loadBinding = load
	checkGOOS = goos
	resolveLibrary = resolve
	t.Cleanup(func() {
		prepareEnv, loadBinding, checkGOOS, resolveLibrary = origPrepare, origLoad, origGOOS, origResolve
	})
}

func TestCheck_Available(t *testing.T) {
	fake := &fakeBinding{version: 15205}
	stubCheck(t, "linux",
		func() (pangoBinding, error) { return fake, nil },
		func(string) bool { return true })

	available, message := Check()
	if !available {
		t.Fatalf("expected available, got message %q", message)
	}
	if !strings.Contains(message, "✓") {
		t.Errorf("success message should carry the success indicator, got %q", message)
	}
	if !strings.Contains(message, "1.52.5") {
		t.Errorf("success message should carry the decoded version, got %q", message)
	}
	if !fake.closed {
		t.Error("binding should be released after the version query")
	}
}

func TestCheck_WindowsMissingNative(t *testing.T) {
	stubCheck(t, "windows",
		func() (pangoBinding, error) {
			return nil, &pango.LoadError{Kind: pango.KindNotFound, Library: "pango-1.0"}
		},
		func(string) bool { return false })

	available, message := Check()
	if available {
		t.Fatal("expected unavailable")
	}
	if !strings.Contains(message, "╔") {
		t.Error("recognized native failure should produce the boxed diagnostic")
	}
	if !strings.Contains(message, "GTK") {
		t.Error("windows diagnostic should mention GTK")
	}
	if !strings.Contains(message, "Auto-added GTK path:") {
		t.Error("windows diagnostic should include the path line")
	}
	if !strings.Contains(message, "pango") {
		t.Error("diagnostic should include the missing-library list")
	}
}

func TestCheck_VersionQueryFails(t *testing.T) {
	fake := &fakeBinding{err: &pango.LoadError{Kind: pango.KindSymbolMissing, Library: "libpango-1.0.so.0"}}
	stubCheck(t, "linux",
		func() (pangoBinding, error) { return fake, nil },
		func(string) bool { return true })

	available, message := Check()
	if available {
		t.Fatal("expected unavailable when the version query fails")
	}
	if !strings.Contains(message, "╔") {
		t.Error("structured symbol-missing failure should produce the boxed diagnostic")
	}
	if !fake.closed {
		t.Error("binding should be released even on failure")
	}
}

func TestCheck_UnrecognizedError(t *testing.T) {
	stubCheck(t, "linux",
		func() (pangoBinding, error) { return nil, errors.New("weird loader state") },
		func(string) bool { return false })

	available, message := Check()
	if available {
		t.Fatal("expected unavailable")
	}
	if strings.Contains(message, "╔") {
		t.Error("unrecognized failure should not produce the boxed diagnostic")
	}
	if !strings.Contains(message, "weird loader state") {
		t.Errorf("short failure should carry the raw error text, got %q", message)
	}
	if !strings.Contains(message, "cairo") {
		t.Errorf("short failure should carry the missing list, got %q", message)
	}
}

func TestCheck_SubstringFallbackRecognizesFamily(t *testing.T) {
	// A foreign error that merely mentions gobject still gets the full
	// diagnostic via the best-effort substring scan.
	stubCheck(t, "linux",
		func() (pangoBinding, error) { return nil, errors.New("libgobject-2.0.so.0: undefined symbol") },
		func(string) bool { return true })

	_, message := Check()
	if !strings.Contains(message, "╔") {
		t.Error("errors mentioning the gobject family should produce the boxed diagnostic")
	}
}

func TestCheck_UnsupportedPlatform(t *testing.T) {
	stubCheck(t, "plan9",
		func() (pangoBinding, error) {
			return nil, &pango.LoadError{Kind: pango.KindUnsupported, Library: "pango-1.0"}
		},
		func(string) bool { return false })

	available, message := Check()
	if available {
		t.Fatal("expected unavailable")
	}
	if !strings.Contains(message, "install the GTK runtime") {
		t.Errorf("unsupported platform should get the short install hint, got %q", message)
	}
}

func TestCheck_RecoversPanic(t *testing.T) {
	stubCheck(t, "linux",
		func() (pangoBinding, error) { panic("loader blew up") },
		func(string) bool { return true })

	available, message := Check()
	if available {
		t.Fatal("expected unavailable after panic")
	}
	if !strings.Contains(message, "loader blew up") {
		t.Errorf("generic failure should carry the panic value, got %q", message)
	}
}

func TestCheck_Idempotent(t *testing.T) {
	stubCheck(t, "linux",
		func() (pangoBinding, error) { return &fakeBinding{version: 15205}, nil },
		func(string) bool { return true })

	a1, m1 := Check()
	a2, m2 := Check()
	if a1 != a2 || m1 != m2 {
		t.Errorf("repeated checks should agree: (%v,%q) vs (%v,%q)", a1, m1, a2, m2)
	}
}

func TestRun_CapturesPreparedPathAndMissing(t *testing.T) {
	origPrepare, origLoad, origGOOS, origResolve := prepareEnv, loadBinding, checkGOOS, resolveLibrary
	prepareEnv = func() string { return "/opt/homebrew/lib" }
	loadBinding = func() (pangoBinding, error) { return &fakeBinding{version: 14401}, nil }
	checkGOOS = "darwin"
	resolveLibrary = func(name string) bool { return !strings.Contains(name, "cairo") }
	t.Cleanup(func() {
		prepareEnv, loadBinding, checkGOOS, resolveLibrary = origPrepare, origLoad, origGOOS, origResolve
	})

	res := Run()
	if res.AddedPath != "/opt/homebrew/lib" {
		t.Errorf("AddedPath = %q", res.AddedPath)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "cairo" {
		t.Errorf("Missing = %v, want [cairo]", res.Missing)
	}
	if res.Platform != "darwin" {
		t.Errorf("Platform = %q", res.Platform)
	}
	if !res.Available {
		t.Error("load succeeded, result should be available")
	}
}

// recordingLogger captures reporter output by level.
type recordingLogger struct {
	success, warn, info []string
}

func (r *recordingLogger) Successf(f string, a ...interface{}) {
	r.success = append(r.success, fmt.Sprintf(f, a...))
}
func (r *recordingLogger) Warnf(f string, a ...interface{}) {
	r.warn = append(r.warn, fmt.Sprintf(f, a...))
}
func (r *recordingLogger) Infof(f string, a ...interface{}) {
	r.info = append(r.info, fmt.Sprintf(f, a...))
}

func TestLogStatusTo_Success(t *testing.T) {
	stubCheck(t, "linux",
		func() (pangoBinding, error) { return &fakeBinding{version: 15205}, nil },
		func(string) bool { return true })

	l := &recordingLogger{}
	if !LogStatusTo(l) {
		t.Fatal("expected true from LogStatusTo on success")
	}
	if len(l.success) != 1 {
		t.Errorf("expected one success line, got %v", l.success)
	}
	if len(l.warn) != 0 || len(l.info) != 0 {
		t.Errorf("no warnings or hints expected on success, got %v / %v", l.warn, l.info)
	}
}

func TestLogStatusTo_Failure(t *testing.T) {
	stubCheck(t, "linux",
		func() (pangoBinding, error) {
			return nil, &pango.LoadError{Kind: pango.KindNotFound, Library: "pango-1.0"}
		},
		func(string) bool { return false })

	l := &recordingLogger{}
	if LogStatusTo(l) {
		t.Fatal("expected false from LogStatusTo on failure")
	}
	if len(l.warn) != 1 {
		t.Errorf("expected one warning line, got %v", l.warn)
	}
	if len(l.info) != 2 {
		t.Errorf("expected two informational hints, got %v", l.info)
	}
}
