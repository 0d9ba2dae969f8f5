// Package manifest holds the fixed dependency set of the workspace.
// The list is a compile-time constant: configuration can tune how the
// packages get installed, never which packages or in which order.
package manifest

// Packages is the ordered dependency set of the analysis workspace.
// Order matters: installs run top to bottom, one pip invocation each.
var Packages = []string{
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

// Names returns a copy of the package list in install order.
// Callers get their own slice so the manifest itself stays immutable.
func Names() []string {
	names := make([]string, len(Packages))
	copy(names, Packages)
	return names
}

// Count returns the number of packages in the manifest.
func Count() int {
	return len(Packages)
}

// Contains reports whether name is part of the manifest.
func Contains(name string) bool {
	for _, pkg := range Packages {
		if pkg == name {
			return true
		}
	}
	return false
}
