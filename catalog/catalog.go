// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mochicards/mochi-redeem/models"
)

type file struct {
	Assets []models.AssetDetail `yaml:"assets"`
}

// Load reads the redeemable-asset catalog from a YAML file. Entries without
// an id or name are skipped so a half-edited catalog never produces assets
// the server would reject. An empty path yields an empty catalog.
func Load(path string) ([]models.AssetDetail, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	assets := make([]models.AssetDetail, 0, len(f.Assets))
	for _, a := range f.Assets {
		if a.ID == "" || a.Name == "" {
			continue
		}
		assets = append(assets, a)
	}

	return assets, nil
}

// Select filters the catalog down to the given ids, preserving catalog
// order. Unknown ids are ignored.
func Select(assets []models.AssetDetail, ids []string) []models.AssetDetail {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var selected []models.AssetDetail
	for _, a := range assets {
		if want[a.ID] {
			selected = append(selected, a)
		}
	}
	return selected
}
