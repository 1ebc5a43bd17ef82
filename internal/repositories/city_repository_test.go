package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCityDatasetCaseInsensitiveFilename(t *testing.T) {
	repo := NewCityRepository("testdata")

	for _, name := range []string{"Test City", "test city", "  TEST   CITY "} {
		dataset, err := repo.LoadCityDataset(name)
		require.NoError(t, err, "city %q", name)
		assert.Equal(t, "Test City", dataset.City)
		assert.Len(t, dataset.Places, 3)
	}
}

func TestLoadCityDatasetUnknownCityIsEmptyNotError(t *testing.T) {
	repo := NewCityRepository("testdata")

	dataset, err := repo.LoadCityDataset("Atlantis")
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", dataset.City)
	assert.Empty(t, dataset.Places)
}

func TestLoadCityDatasetMissingDirIsEmptyNotError(t *testing.T) {
	repo := NewCityRepository("testdata/does-not-exist")

	dataset, err := repo.LoadCityDataset("Pune")
	require.NoError(t, err)
	assert.Empty(t, dataset.Places)
}
