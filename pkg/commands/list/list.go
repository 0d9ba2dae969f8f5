// Package list reports the manifest packages in install order.
package list

import (
	"github.com/mihaiBront/venvup/pkg/logging"
	"github.com/mihaiBront/venvup/pkg/manifest"
)

// PackageInfo describes one manifest entry.
type PackageInfo struct {
	// Position is the 1-based slot in the install sequence.
	Position int
	// Name is the package name as passed to the installer.
	Name string
}

// Result holds the result of the List command.
type Result struct {
	Packages []PackageInfo
}

// Packages returns every manifest package in install order.
func Packages() *Result {
	log := logging.GetLogger("commands.list")

	names := manifest.Names()
	result := &Result{Packages: make([]PackageInfo, len(names))}
	for i, name := range names {
		result.Packages[i] = PackageInfo{Position: i + 1, Name: name}
	}

	log.Debug().Int("packageCount", len(names)).Msg("Listed manifest packages")
	return result
}
