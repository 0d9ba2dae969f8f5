package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackagesLiteralOrder(t *testing.T) {
	// The workspace dependency set, in the order installs must run.
	want := []string{
		"coloredlogs",
		"matplotlib",
		"numpy",
		"xlwings",
		"pandas",
		"openpyxl",
		"scipy",
		"opencv-python",
		"psd-tools",
		"imutils",
		"mkdocs",
		"mkdocstrings",
		"mkdocstrings-crystal",
		"mkdocstrings-python",
		"mkdocs-print-site-plugin",
		"mkdocs-autorefs",
		"mkdocs-admonition",
		"mkdocs-material",
		"pyinstaller",
	}

	assert.Equal(t, want, Packages)
	assert.Equal(t, 19, Count())
}

func TestPackagesNoDuplicates(t *testing.T) {
	seen := make(map[string]bool, len(Packages))
	for _, pkg := range Packages {
		assert.False(t, seen[pkg], "duplicate package %q", pkg)
		seen[pkg] = true
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	names := Names()
	assert.Equal(t, Packages, names)

	// Mutating the returned slice must not touch the manifest.
	names[0] = "mutated"
	assert.Equal(t, "coloredlogs", Packages[0])
}

func TestNamesStableAcrossCalls(t *testing.T) {
	// Two reads of the manifest must produce the identical sequence.
	assert.Equal(t, Names(), Names())
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("numpy"))
	assert.True(t, Contains("mkdocs-material"))
	assert.False(t, Contains("requests"))
	assert.False(t, Contains(""))
}
