// Package buildinfo carries the version stamp shown in window titles and
// log lines.
package buildinfo

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags. When unset, the VCS revision
// recorded by the Go toolchain is used.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier: the version if stamped, else a
// shortened commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		if len(c) > 7 {
			c = c[:7]
		}
		return c
	}
	return "dev"
}

// Title returns "name (short)" for window titles.
func Title(name string) string {
	if name == "" {
		return Short()
	}
	return name + " (" + Short() + ")"
}

func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
