// Package pip builds installer invocations and inspects what an
// environment already has installed. Resolution, downloading, and the
// install itself stay entirely with the external tool.
package pip

import (
	"regexp"
	"strings"
)

// InstallArgs returns the argument vector for installing a single
// package: "install <name>", then any configured extra arguments.
func InstallArgs(pkg string, extraArgs []string) []string {
	args := []string{"install", pkg}
	return append(args, extraArgs...)
}

// ListArgs returns the argument vector for querying installed
// distributions in a machine-readable form.
func ListArgs() []string {
	return []string{"list", "--format=json"}
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeName canonicalizes a distribution name for comparison.
// PyPI treats runs of hyphens, underscores and dots as equivalent, so
// "psd_tools" and "psd-tools" name the same distribution.
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}
