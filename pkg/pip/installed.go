package pip

import (
	"context"
	"encoding/json"
	"os/exec"

	"github.com/mihaiBront/venvup/pkg/errors"
	"github.com/mihaiBront/venvup/pkg/logging"
)

var log = logging.GetLogger("pip")

// Distribution is one installed package as reported by the installer
type Distribution struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// List queries the installer for every installed distribution.
// bin is resolved through PATH, so an activated environment reports
// its own packages.
func List(ctx context.Context, bin string) ([]Distribution, error) {
	cmd := exec.CommandContext(ctx, bin, ListArgs()...)
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionExecute, "failed to run %s list", bin)
	}

	var dists []Distribution
	if err := json.Unmarshal(output, &dists); err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionExecute, "failed to parse %s list output", bin)
	}

	log.Debug().Int("count", len(dists)).Msg("Installed distributions listed")
	return dists, nil
}

// InstalledSet returns the distributions keyed by normalized name for
// membership checks against the package manifest.
func InstalledSet(dists []Distribution) map[string]Distribution {
	set := make(map[string]Distribution, len(dists))
	for _, d := range dists {
		set[NormalizeName(d.Name)] = d
	}
	return set
}
