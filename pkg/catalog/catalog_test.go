package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- transformation registry tests ---

func TestCatalogAddTransformations(t *testing.T) {
	tc := NewTransformationCatalog()
	keg := NewTransformation("keg", "pegasus", "1.0")
	zip := NewTransformation("zip", "", "")

	require.NoError(t, tc.AddTransformations(keg, zip))

	assert.True(t, tc.HasTransformation(keg))
	assert.True(t, tc.HasTransformation(zip))
	assert.Len(t, tc.Transformations(), 2)
}

func TestCatalogAddTransformations_Duplicate(t *testing.T) {
	tc := NewTransformationCatalog()
	keg := NewTransformation("keg", "pegasus", "1.0")

	require.NoError(t, tc.AddTransformations(keg))
	err := tc.AddTransformations(NewTransformation("keg", "pegasus", "1.0"))

	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Len(t, tc.Transformations(), 1)
}

func TestCatalogAddTransformations_NotAtomic(t *testing.T) {
	tc := NewTransformationCatalog()
	zip := NewTransformation("zip", "", "")
	dup := NewTransformation("zip", "", "")
	tar := NewTransformation("tar", "", "")

	// The batch fails at the duplicate; zip stays inserted, tar never lands.
	err := tc.AddTransformations(zip, dup, tar)

	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.True(t, tc.HasTransformation(zip))
	assert.False(t, tc.HasTransformation(tar))
}

func TestCatalogAddTransformations_Nil(t *testing.T) {
	tc := NewTransformationCatalog()

	err := tc.AddTransformations(nil)

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Empty(t, tc.Transformations())
}

func TestCatalogGetTransformation(t *testing.T) {
	tc := NewTransformationCatalog()
	keg := NewTransformation("keg", "pegasus", "1.0")
	require.NoError(t, tc.AddTransformations(keg))

	got, err := tc.GetTransformation(TransformationKey{Name: "keg", Namespace: "pegasus", Version: "1.0"})
	require.NoError(t, err)
	assert.Same(t, keg, got)

	_, err = tc.GetTransformation(TransformationKey{Name: "keg"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogRemoveTransformation(t *testing.T) {
	tc := NewTransformationCatalog()
	keg := NewTransformation("keg", "", "")
	require.NoError(t, tc.AddTransformations(keg))

	require.NoError(t, tc.RemoveTransformation(keg.Key()))

	assert.False(t, tc.HasTransformation(keg))
	err := tc.RemoveTransformation(keg.Key())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogRemoveTransformation_KeepsRequirementEdges(t *testing.T) {
	tc := NewTransformationCatalog()
	keg := NewTransformation("keg", "", "")
	pipeline := NewTransformation("pipeline", "", "")
	require.NoError(t, pipeline.AddRequirement(keg))
	require.NoError(t, tc.AddTransformations(keg, pipeline))

	// Removal does not clean up edges pointing at the removed entry.
	require.NoError(t, tc.RemoveTransformation(keg.Key()))

	assert.True(t, pipeline.HasRequirement(keg))
}

func TestCatalogTransformations_InsertionOrder(t *testing.T) {
	tc := NewTransformationCatalog()
	require.NoError(t, tc.AddTransformations(
		NewTransformation("zip", "", ""),
		NewTransformation("keg", "", ""),
		NewTransformation("tar", "", ""),
	))

	names := make([]string, 0, 3)
	for _, tr := range tc.Transformations() {
		names = append(names, tr.Name())
	}
	assert.Equal(t, []string{"zip", "keg", "tar"}, names)
}

// --- container registry tests ---

func TestCatalogAddContainer(t *testing.T) {
	tc := NewTransformationCatalog()

	require.NoError(t, tc.AddContainer("centos-pegasus", Docker, "docker:///rynge/montage:latest", "/Volumes/Work/lfs1:/shared-data/:ro", "local"))

	assert.True(t, tc.HasContainer("centos-pegasus"))
	container, err := tc.GetContainer("centos-pegasus")
	require.NoError(t, err)
	assert.Equal(t, Docker, container.Type)
	assert.Equal(t, "local", container.ImageSite)
}

func TestCatalogAddContainer_Duplicate(t *testing.T) {
	tc := NewTransformationCatalog()
	require.NoError(t, tc.AddContainer("c1", Docker, "img", "/m", ""))

	err := tc.AddContainer("c1", Singularity, "other", "/m2", "")

	assert.True(t, errors.Is(err, ErrDuplicate))
	container, getErr := tc.GetContainer("c1")
	require.NoError(t, getErr)
	assert.Equal(t, Docker, container.Type)
}

func TestCatalogAddContainer_InvalidType(t *testing.T) {
	tc := NewTransformationCatalog()

	err := tc.AddContainer("c1", ContainerType("podman"), "img", "/m", "")

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.False(t, tc.HasContainer("c1"))
}

func TestCatalogGetContainer_AfterRemove(t *testing.T) {
	tc := NewTransformationCatalog()
	require.NoError(t, tc.AddContainer("c1", Docker, "img", "/m", ""))

	require.NoError(t, tc.RemoveContainer("c1"))

	_, err := tc.GetContainer("c1")
	assert.True(t, errors.Is(err, ErrNotFound))
	err = tc.RemoveContainer("c1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogContainers_InsertionOrder(t *testing.T) {
	tc := NewTransformationCatalog()
	require.NoError(t, tc.AddContainer("c2", Docker, "img2", "/m", ""))
	require.NoError(t, tc.AddContainer("c1", Shifter, "img1", "/m", ""))

	names := make([]string, 0, 2)
	for _, container := range tc.Containers() {
		names = append(names, container.Name)
	}
	assert.Equal(t, []string{"c2", "c1"}, names)
}
