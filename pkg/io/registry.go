package io

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/datanate/pkg/errors"
	"github.com/matzehuels/datanate/pkg/metric"
)

// LoadRegistry reads the definition file and every metric's series from
// dataDir into a registry.
//
// A missing dataDir or definition file, a malformed definition or a
// malformed series file is a configuration error. A missing series file is
// reported as a MISSING_SERIES warning; the metric is kept with no data.
func LoadRegistry(definitionsPath, dataDir string) (*metric.Registry, errors.Warnings, error) {
	if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
		return nil, nil, errors.New(errors.ErrCodeInvalidConfig,
			"data directory %s not found; link your metrics repository (ln -s ../your-metrics-data %s) or copy the CSV files into it",
			dataDir, dataDir)
	}

	defs, err := LoadDefinitions(definitionsPath)
	if err != nil {
		return nil, nil, err
	}
	return BuildRegistry(defs, dataDir)
}

// BuildRegistry loads the series for already parsed definitions.
func BuildRegistry(defs *Definitions, dataDir string) (*metric.Registry, errors.Warnings, error) {
	var warnings errors.Warnings
	reg := metric.NewRegistry()
	reg.SetCategories(defs.Categories)

	for _, e := range defs.Metrics {
		d := e.Definition
		metric.ApplyDefaults(e.Key, &d)
		if err := errors.ValidatePath(filepath.ToSlash(d.File)); err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidMetric, err, "metric %q: file", e.Key)
		}

		path := filepath.Join(dataDir, filepath.FromSlash(d.File))
		series, err := LoadSeries(path)
		switch {
		case os.IsNotExist(err):
			warnings.Add(errors.ErrCodeMissingSeries, e.Key, "series file %s for metric %q not found", path, e.Key)
		case err != nil:
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidMetric, err, "metric %q: series %s", e.Key, path)
		}

		if err := reg.Add(metric.Metric{Key: e.Key, Definition: d, Series: series}); err != nil {
			return nil, nil, err
		}
	}
	return reg, warnings, nil
}
