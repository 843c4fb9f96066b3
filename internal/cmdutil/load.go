package cmdutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/pegasus-wms/tc/internal/config"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
	"github.com/pegasus-wms/tc/pkg/catalog"
)

// LoadOpts holds the inputs for LoadCatalog.
type LoadOpts struct {
	// Args from the cobra command (first arg is the catalog path).
	Args []string

	// Config is the loaded configuration (may be nil).
	Config *config.Config
}

// LoadCatalog resolves the catalog path (positional argument, TC_CATALOG,
// config file, built-in default) and loads it. It returns the catalog and
// the path it was loaded from. A missing file comes back as an *ExitError
// with the not-found exit code and a hint matched to where the path came
// from.
func LoadCatalog(opts LoadOpts) (*catalog.TransformationCatalog, string, error) {
	var configValue string
	if opts.Config != nil {
		configValue = opts.Config.Catalog
	}

	resolved := config.ResolveCatalogPath(config.ResolveCatalogPathOptions{
		ArgValue:    CatalogPathFromArgs(opts.Args),
		ConfigValue: configValue,
	})
	path := resolved.Value

	output.Debug("loading catalog", "path", path, "source", resolved.Source)

	cat, err := catalog.Load(path)
	switch {
	case err == nil:
		return cat, path, nil
	case errors.Is(err, os.ErrNotExist):
		detail := oerrors.NewNotFoundError(
			fmt.Sprintf("catalog %s does not exist", path),
			path,
			loadHint(resolved.Source),
		)
		return nil, path, &oerrors.ExitError{Code: oerrors.ExitNotFound, Err: detail}
	default:
		return nil, path, fmt.Errorf("loading %s: %w", path, err)
	}
}

// loadHint suggests a fix based on where the catalog path came from.
func loadHint(source config.ConfigSource) string {
	switch source {
	case config.SourceEnv:
		return "TC_CATALOG points at a missing file"
	case config.SourceConfig:
		return "the catalog path in the config file points at a missing file"
	case config.SourceDefault:
		return "pass a catalog path, or create tc.yml with `tc init`"
	default:
		return ""
	}
}
