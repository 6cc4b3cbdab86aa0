package depcheck

import (
	"fmt"
	"strings"
)

const (
	boxTop    = "╔════════════════════════════════════════════════════════════════╗\n"
	boxBottom = "╚════════════════════════════════════════════════════════════════╝"
	boxBlank  = "║                                                                ║\n"
)

// successMessage reports that PDF export is usable. version is Pango's
// dotted version string.
func successMessage(version string) string {
	return fmt.Sprintf("✓ Pango %s detected, PDF export is available", version)
}

// composeDiagnostic builds the full boxed diagnostic shown when the
// Pango load fails for a recognized native-dependency reason.
func composeDiagnostic(goos, addedPath string, missing []string) string {
	var b strings.Builder
	b.WriteString(boxTop)
	b.WriteString("║  ⚠️  PDF export dependencies missing                           ║\n")
	b.WriteString(boxBlank)
	b.WriteString("║  📄 PDF export will be unavailable (other features still work) ║\n")
	b.WriteString(boxBlank)

	if goos == "windows" {
		display := addedPath
		if display == "" {
			display = "no default path found"
		}
		// Keep the line from blowing out the box width.
		display = truncatePath(display, 38)
		fmt.Fprintf(&b, "║  Auto-added GTK path: %-41s║\n", display)
		b.WriteString("║  🔍 Installed but still failing? Match the app and GTK bitness ║\n")
		b.WriteString("║     (64 vs 32 bit) and open a fresh terminal                   ║\n")
	}

	if len(missing) > 0 {
		joined := truncatePath(strings.Join(missing, ", "), 40)
		fmt.Fprintf(&b, "║  Unresolved native libraries: %-33s║\n", joined)
	}

	b.WriteString(platformInstructions(goos))
	b.WriteString(boxBlank)
	b.WriteString("║  📖 Full instructions: README.md, PDF export prerequisites     ║\n")
	b.WriteString(boxBottom)
	return b.String()
}

// platformInstructions returns the install guidance block for goos,
// formatted as boxed lines.
func platformInstructions(goos string) string {
	switch goos {
	case "darwin":
		return "" +
			"║  🍎 macOS fix:                                                 ║\n" +
			boxBlank +
			"║  1. Install the native libraries:                              ║\n" +
			"║     brew install pango gdk-pixbuf libffi                       ║\n" +
			boxBlank +
			"║  2. Export the library path (important!):                      ║\n" +
			"║     Apple Silicon:                                             ║\n" +
			"║       export DYLD_LIBRARY_PATH=/opt/homebrew/lib:$DYLD_LIBRARY_PATH ║\n" +
			"║     Intel:                                                     ║\n" +
			"║       export DYLD_LIBRARY_PATH=/usr/local/lib:$DYLD_LIBRARY_PATH ║\n" +
			boxBlank +
			"║  3. Persist it (recommended): add the export to ~/.zshrc and  ║\n" +
			"║     run: source ~/.zshrc                                       ║\n"
	case "linux":
		return "" +
			"║  🐧 Linux fix:                                                 ║\n" +
			boxBlank +
			"║  Debian/Ubuntu:                                                ║\n" +
			"║    sudo apt-get install libpango-1.0-0 libpangoft2-1.0-0 \\     ║\n" +
			"║                         libgdk-pixbuf2.0-0 libffi-dev libcairo2 ║\n" +
			boxBlank +
			"║  CentOS/RHEL:                                                  ║\n" +
			"║    sudo yum install pango gdk-pixbuf2 libffi-devel cairo       ║\n" +
			boxBlank +
			"║  Still missing? export LD_LIBRARY_PATH=/usr/local/lib:$LD_LIBRARY_PATH ║\n" +
			"║                 then: sudo ldconfig                            ║\n"
	case "windows":
		return "" +
			"║  🪟 Windows fix:                                               ║\n" +
			boxBlank +
			"║  1. Install the GTK3 runtime:                                  ║\n" +
			"║     https://github.com/tschoonj/GTK-for-Windows-Runtime-Environment-Installer/releases ║\n" +
			boxBlank +
			"║  2. Add the GTK bin directory to PATH (new terminal needed):   ║\n" +
			"║     set PATH=C:\\Program Files\\GTK3-Runtime Win64\\bin;%PATH%    ║\n" +
			"║     (replace with your install path if customized)             ║\n" +
			boxBlank +
			"║  3. Verify in a fresh terminal:                                ║\n" +
			"║     pangocheck check                                           ║\n" +
			"║     a ✓ line means PDF export is usable                        ║\n"
	default:
		return "║  See README.md for install steps on your platform              ║\n"
	}
}

// shortFailure is the one-line message for load errors with an
// unrecognized cause.
func shortFailure(errText string, missing []string) string {
	unresolved := "unknown"
	if len(missing) > 0 {
		unresolved = strings.Join(missing, ", ")
	}
	return fmt.Sprintf("⚠ PDF dependency load failed: %s; unresolved: %s", errText, unresolved)
}

// bindingMissingMessage covers platforms where the Pango binding cannot
// be loaded at all.
func bindingMissingMessage(goos string) string {
	return fmt.Sprintf("⚠ Pango binding unavailable on %s\nFix: install the GTK runtime for your platform (see README.md)", goos)
}

// genericFailure covers unclassified errors from the check itself.
func genericFailure(cause interface{}) string {
	return fmt.Sprintf("⚠ PDF dependency check failed: %v", cause)
}

// truncatePath shortens s to at most max runes of ASCII path text,
// marking the cut with "...".
func truncatePath(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
