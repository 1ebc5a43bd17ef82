package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

// CityRepository loads per-city seed datasets from disk. Unknown cities are
// not an error; they return an empty dataset and leave the generator as the
// only source of places.
type CityRepository interface {
	LoadCityDataset(cityName string) (domain_models.CityDataset, error)
}

type cityRepository struct {
	dataDir string
}

func NewCityRepository(dataDir string) CityRepository {
	return &cityRepository{dataDir: dataDir}
}

func (r *cityRepository) LoadCityDataset(cityName string) (domain_models.CityDataset, error) {
	normalized := utils.CanonicalName(cityName)
	empty := domain_models.CityDataset{City: cityName, Places: []domain_models.RawPlace{}}

	direct := filepath.Join(r.dataDir, normalized+".json")
	if dataset, ok, err := r.readDataset(direct); err != nil {
		return empty, err
	} else if ok {
		return dataset, nil
	}

	// Dataset filenames are not guaranteed to be canonical; fall back to a
	// case/whitespace-insensitive scan of the directory.
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return empty, fmt.Errorf("reading city data dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".json")
		if utils.CanonicalName(stem) != normalized {
			continue
		}
		if dataset, ok, err := r.readDataset(filepath.Join(r.dataDir, entry.Name())); err != nil {
			return empty, err
		} else if ok {
			return dataset, nil
		}
	}

	return empty, nil
}

func (r *cityRepository) readDataset(path string) (domain_models.CityDataset, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain_models.CityDataset{}, false, nil
		}
		return domain_models.CityDataset{}, false, fmt.Errorf("reading city dataset %s: %w", path, err)
	}

	var dataset domain_models.CityDataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return domain_models.CityDataset{}, false, fmt.Errorf("decoding city dataset %s: %w", path, err)
	}
	return dataset, true, nil
}
