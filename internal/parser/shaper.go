// Package parser provides utilities for decoding and shaping country data.
// It handles dataset decoding, ranking, grouping and display formatting.
package parser

import (
	"slices"
	"sort"

	"github.com/terrascope/worldview/internal/models"
)

// TopLimit is the number of records kept by the top-N views.
const TopLimit = 10

// Shape filters, ranks and groups records for a view. It never mutates its
// input and always returns the same result for the same arguments.
func Shape(records []models.CountryRecord, mode models.ViewMode, filter models.RegionFilter) models.ShapedResult {
	result := models.ShapedResult{
		Mode:   mode,
		Region: filter,
		Groups: []models.Group{},
	}

	filtered := FilterByRegion(records, filter)
	if len(filtered) == 0 {
		return result
	}

	switch mode {
	case models.AllByContinent:
		result.Groups = GroupByRegion(filtered)
	case models.TopTenPerContinent:
		groups := GroupByRegion(filtered)
		for i := range groups {
			groups[i].Records = TopN(groups[i].Records, TopLimit)
		}
		result.Groups = groups
	default:
		result.Groups = append(result.Groups, models.Group{
			Records: TopN(RankDescending(filtered), TopLimit),
		})
	}

	return result
}

func FilterByRegion(records []models.CountryRecord, filter models.RegionFilter) []models.CountryRecord {
	if filter.IsAll() {
		return records
	}

	filtered := []models.CountryRecord{}
	for _, r := range records {
		if r.Region == string(filter) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// RankDescending returns a copy sorted by population, largest first. Equal
// populations keep their input order.
func RankDescending(records []models.CountryRecord) []models.CountryRecord {
	ranked := slices.Clone(records)
	if ranked == nil {
		ranked = []models.CountryRecord{}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Population > ranked[j].Population
	})

	return ranked
}

func TopN(records []models.CountryRecord, n int) []models.CountryRecord {
	if n <= 0 {
		return []models.CountryRecord{}
	}
	if len(records) <= n {
		return slices.Clone(records)
	}
	return slices.Clone(records[:n])
}

// GroupByRegion buckets records by region. Groups come out in ascending
// lexicographic order of region name, each ranked by population.
func GroupByRegion(records []models.CountryRecord) []models.Group {
	buckets := make(map[string][]models.CountryRecord)
	regions := []string{}

	for _, r := range records {
		if _, ok := buckets[r.Region]; !ok {
			regions = append(regions, r.Region)
		}
		buckets[r.Region] = append(buckets[r.Region], r)
	}

	sort.Strings(regions)

	groups := make([]models.Group, 0, len(regions))
	for _, region := range regions {
		groups = append(groups, models.Group{
			Label:   region,
			Records: RankDescending(buckets[region]),
		})
	}

	return groups
}
