// Package gtkpath widens the process's native-library search scope so
// the GTK runtime family (Pango, GObject, gdk-pixbuf, cairo) can be
// found before any load attempt. Default search paths frequently omit
// manually installed GUI-toolkit runtimes, especially on Windows.
//
// Prepare mutates process environment variables and, on Windows, the
// loader's DLL search list. These side effects are process-wide, last
// for the remainder of the process lifetime, and are not reversible.
// Call it once at startup, before loading anything.
package gtkpath

import (
	"path/filepath"
	"strings"
)

// gtkEnvVars are user-override variables naming a GTK runtime install,
// highest priority first.
var gtkEnvVars = []string{
	"GTK3_RUNTIME_PATH",
	"GTK_RUNTIME_PATH",
	"GTK_BIN_PATH",
	"GTK_BIN_DIR",
	"GTK_PATH",
}

// gtkDirNames are the install directory names the GTK runtime installer
// offers, widest first.
var gtkDirNames = []string{
	"GTK3-Runtime Win64",
	"GTK3-Runtime Win32",
	"GTK3-Runtime",
}

// driveRoots are scanned for developer-style installs outside Program Files.
var driveRoots = []string{`C:\`, `D:\`, `E:\`, `F:\`}

// dedupeFold removes duplicates case-insensitively, keeping first
// occurrence order. Windows paths compare case-insensitively.
func dedupeFold(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// searchPathHints returns entries of a PATH-style value whose name hints
// at the GTK library family. Coarse filter; candidates are validated
// against the expected DLL pattern afterwards.
func searchPathHints(pathValue, sep string) []string {
	var hints []string
	for _, entry := range strings.Split(pathValue, sep) {
		if entry == "" {
			continue
		}
		lower := strings.ToLower(entry)
		if strings.Contains(lower, "gtk") || strings.Contains(lower, "pango") {
			hints = append(hints, entry)
		}
	}
	return hints
}

// prependMissing prepends the candidate dirs that exist and are not
// already listed in current, joined with sep. Reports whether anything
// was added.
func prependMissing(current, sep string, candidates []string, dirExists func(string) bool) (string, bool) {
	listed := strings.Split(current, sep)
	var added []string
	for _, c := range candidates {
		if !dirExists(c) {
			continue
		}
		found := false
		for _, l := range listed {
			if l == c {
				found = true
				break
			}
		}
		if !found {
			added = append(added, c)
		}
	}
	if len(added) == 0 {
		return current, false
	}
	if current != "" {
		added = append(added, current)
	}
	return strings.Join(added, sep), true
}

// collectCandidates assembles the ordered Windows candidate list:
// override env vars, conventional Program Files installs, drive-root
// scans, a GTK* glob under Program Files, and PATH entries hinting at
// GTK. A candidate expands to itself and its bin child; the result is
// deduplicated case-insensitively.
func collectCandidates(getenv func(string) string, dirExists func(string) bool, glob func(string) []string) []string {
	var out []string
	add := func(p string) {
		if p == "" {
			return
		}
		if strings.EqualFold(filepath.Base(p), "bin") {
			if dirExists(p) {
				out = append(out, p)
			}
			return
		}
		for _, maybe := range []string{p, filepath.Join(p, "bin")} {
			if dirExists(maybe) {
				out = append(out, maybe)
			}
		}
	}

	for _, v := range gtkEnvVars {
		add(getenv(v))
	}

	programFiles := getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	programFilesX86 := getenv("ProgramFiles(x86)")
	if programFilesX86 == "" {
		programFilesX86 = `C:\Program Files (x86)`
	}

	var roots []string
	for _, name := range gtkDirNames {
		roots = append(roots,
			filepath.Join(programFiles, name),
			filepath.Join(programFilesX86, name))
	}
	for _, drive := range driveRoots {
		for _, name := range gtkDirNames {
			roots = append(roots,
				filepath.Join(drive, name),
				filepath.Join(drive, "DevelopSoftware", name))
		}
	}
	// Custom install names under Program Files, e.g. "GTK3 Runtime" or "gtk3".
	for _, root := range []string{programFiles, programFilesX86} {
		roots = append(roots, glob(filepath.Join(root, "GTK*"))...)
	}
	for _, r := range roots {
		add(r)
	}

	for _, entry := range searchPathHints(getenv("PATH"), ";") {
		add(entry)
	}

	return dedupeFold(out)
}

// hasPangoDLL reports whether dir contains a Pango DLL, which is what
// qualifies a candidate as a real GTK runtime directory.
func hasPangoDLL(dir string, glob func(string) []string, fileExists func(string) bool) bool {
	for _, pattern := range []string{"pango*-1.0-*.dll", "libpango*-1.0-*.dll"} {
		if len(glob(filepath.Join(dir, pattern))) > 0 {
			return true
		}
	}
	for _, name := range []string{"pango-1.0-0.dll", "libpango-1.0-0.dll"} {
		if fileExists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}
