package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// File is the on-disk shape of a variant catalog export:
//
//	[[variants]]
//	id = "v-1"
//	workstation_ids = ["ws-1"]
//	[[variants.services]]
//	service_id = "assembly"
//	estimated_time_hours = 0.5
type File struct {
	Variants []entities.Variant `toml:"variants"`
}

// Load reads and validates a catalog file.
func Load(fs afero.Fs, path string) ([]entities.Variant, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f File
	if err := toml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range f.Variants {
		normalize(&f.Variants[i])
		if err := validate(f.Variants[i]); err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
	}
	return f.Variants, nil
}

// Import upserts every variant and returns how many were written.
func Import(ctx context.Context, repo interfaces.IVariantRepository, variants []entities.Variant) (int, error) {
	for i, v := range variants {
		if err := repo.Upsert(ctx, v); err != nil {
			return i, fmt.Errorf("upsert variant %s: %w", v.ID, err)
		}
	}
	return len(variants), nil
}

func normalize(v *entities.Variant) {
	v.ID = strings.TrimSpace(v.ID)
	v.Name = strings.TrimSpace(v.Name)
	v.ProductName = strings.TrimSpace(v.ProductName)
	for i := range v.WorkstationIDs {
		v.WorkstationIDs[i] = strings.TrimSpace(v.WorkstationIDs[i])
	}
	for i := range v.Services {
		v.Services[i].ServiceID = strings.TrimSpace(v.Services[i].ServiceID)
		v.Services[i].Name = strings.TrimSpace(v.Services[i].Name)
	}
}

func validate(v entities.Variant) error {
	if v.ID == "" {
		return errors.New("id is required")
	}
	seen := make(map[string]bool, len(v.Services))
	for _, s := range v.Services {
		if s.ServiceID == "" {
			return fmt.Errorf("%s: service_id is required", v.ID)
		}
		if seen[s.ServiceID] {
			return fmt.Errorf("%s: duplicate service %s", v.ID, s.ServiceID)
		}
		seen[s.ServiceID] = true
		if s.EstimatedTimeHours < 0 {
			return fmt.Errorf("%s: service %s has a negative estimate", v.ID, s.ServiceID)
		}
	}
	for _, ws := range v.WorkstationIDs {
		if ws == "" {
			return fmt.Errorf("%s: empty workstation id", v.ID)
		}
	}
	return nil
}
