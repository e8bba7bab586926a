package domain

import "sort"

// Summary holds the statistics derived once from a joined dataset and shared
// by the chart renderers and the narrative generator.
type Summary struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64

	// MaxArea and MinArea are the areas holding the extreme rates. Ties are
	// broken by ascending area ID so the choice is deterministic.
	MaxArea CommunityArea
	MinArea CommunityArea

	// Top is ordered descending by rate, Bottom ascending; both break ties by
	// ascending area ID and hold at most the requested n entries.
	Top    []CommunityArea
	Bottom []CommunityArea
}

// Summarize computes a Summary over the dataset, keeping the n highest and n
// lowest areas. An empty dataset yields a zero Summary.
func Summarize(ds Dataset, n int) Summary {
	if len(ds) == 0 {
		return Summary{}
	}

	desc := make([]CommunityArea, len(ds))
	copy(desc, ds)
	sort.SliceStable(desc, func(i, j int) bool {
		if desc[i].Rate != desc[j].Rate {
			return desc[i].Rate > desc[j].Rate
		}
		return desc[i].ID < desc[j].ID
	})

	asc := make([]CommunityArea, len(ds))
	copy(asc, ds)
	sort.SliceStable(asc, func(i, j int) bool {
		if asc[i].Rate != asc[j].Rate {
			return asc[i].Rate < asc[j].Rate
		}
		return asc[i].ID < asc[j].ID
	})

	var sum float64
	for _, area := range ds {
		sum += area.Rate
	}

	if n > len(ds) {
		n = len(ds)
	}

	return Summary{
		Count:   len(ds),
		Mean:    sum / float64(len(ds)),
		Min:     asc[0].Rate,
		Max:     desc[0].Rate,
		MaxArea: desc[0],
		MinArea: asc[0],
		Top:     desc[:n],
		Bottom:  asc[:n],
	}
}
