package domain

import (
	"fmt"
	"sort"
)

// Join inner-joins health rows with boundaries on area ID and returns the
// result ordered by ID. Areas present on only one side are dropped. A
// duplicate area ID on either side violates the one-geometry-per-area
// invariant and is a data error, as is a join that produces zero rows.
func Join(health []HealthRecord, boundaries []Boundary) (Dataset, error) {
	byID := make(map[int]Boundary, len(boundaries))
	for _, b := range boundaries {
		if _, ok := byID[b.AreaID]; ok {
			return nil, fmt.Errorf("%w: duplicate geometry for area %d", ErrData, b.AreaID)
		}
		byID[b.AreaID] = b
	}

	seen := make(map[int]bool, len(health))
	ds := make(Dataset, 0, len(health))
	for _, h := range health {
		if seen[h.AreaID] {
			return nil, fmt.Errorf("%w: duplicate health row for area %d", ErrData, h.AreaID)
		}
		seen[h.AreaID] = true

		b, ok := byID[h.AreaID]
		if !ok {
			continue
		}

		name := h.Name
		if name == "" {
			name = b.Name
		}
		ds = append(ds, CommunityArea{
			ID:       h.AreaID,
			Name:     name,
			Rate:     h.Rate,
			Geometry: b.Geometry,
		})
	}

	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: no health rows matched a community-area boundary", ErrData)
	}

	sort.Slice(ds, func(i, j int) bool { return ds[i].ID < ds[j].ID })
	return ds, nil
}
