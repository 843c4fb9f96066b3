package cmdutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pegasus-wms/tc/internal/config"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/pkg/catalog"
)

// writeCatalogFile writes a one-transformation catalog and returns its path.
func writeCatalogFile(t *testing.T, name string) string {
	t.Helper()

	keg := catalog.NewTransformation("keg", "example", "1.0")
	require.NoError(t, keg.AddSite("condorpool", "/usr/bin/keg", catalog.Stageable, catalog.SiteOptions{}))

	c := catalog.NewTransformationCatalog()
	require.NoError(t, c.AddTransformations(keg))

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, c.Write(path, catalog.FormatYAML))
	return path
}

func TestLoadCatalog_FromArg(t *testing.T) {
	t.Setenv("TC_CATALOG", "")
	path := writeCatalogFile(t, "tc.yml")

	cat, usedPath, err := LoadCatalog(LoadOpts{Args: []string{path}})
	require.NoError(t, err)
	assert.Equal(t, path, usedPath)
	assert.Len(t, cat.Transformations(), 1)
}

func TestLoadCatalog_FromEnv(t *testing.T) {
	path := writeCatalogFile(t, "tc.yml")
	t.Setenv("TC_CATALOG", path)

	cat, usedPath, err := LoadCatalog(LoadOpts{})
	require.NoError(t, err)
	assert.Equal(t, path, usedPath)
	assert.Len(t, cat.Transformations(), 1)
}

func TestLoadCatalog_FromConfig(t *testing.T) {
	t.Setenv("TC_CATALOG", "")
	path := writeCatalogFile(t, "tc.yml")

	cat, usedPath, err := LoadCatalog(LoadOpts{Config: &config.Config{Catalog: path}})
	require.NoError(t, err)
	assert.Equal(t, path, usedPath)
	assert.NotNil(t, cat)
}

func TestLoadCatalog_ArgBeatsEnv(t *testing.T) {
	path := writeCatalogFile(t, "tc.yml")
	t.Setenv("TC_CATALOG", filepath.Join(t.TempDir(), "absent.yml"))

	_, usedPath, err := LoadCatalog(LoadOpts{Args: []string{path}})
	require.NoError(t, err)
	assert.Equal(t, path, usedPath)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	t.Setenv("TC_CATALOG", "")
	path := filepath.Join(t.TempDir(), "absent.yml")

	_, _, err := LoadCatalog(LoadOpts{Args: []string{path}})
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitNotFound, exitErr.Code)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, path, detail.Location)
}

// The hint names the source of the bad path, so users fix the right thing.
func TestLoadCatalog_MissingFileHintNamesEnv(t *testing.T) {
	t.Setenv("TC_CATALOG", filepath.Join(t.TempDir(), "absent.yml"))

	_, _, err := LoadCatalog(LoadOpts{})
	require.Error(t, err)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Contains(t, detail.Hint, "TC_CATALOG")
}

func TestLoadCatalog_MalformedFile(t *testing.T) {
	t.Setenv("TC_CATALOG", "")
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("{unbalanced"), 0o644))

	_, _, err := LoadCatalog(LoadOpts{Args: []string{path}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	var exitErr *oerrors.ExitError
	assert.False(t, errors.As(err, &exitErr), "parse failures carry no explicit exit code")
}
