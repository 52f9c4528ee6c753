// Package parser provides utilities for decoding and shaping country data.
// It handles dataset decoding, ranking, grouping and display formatting.
package parser

import (
	"fmt"
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/terrascope/worldview/internal/models"
)

func country(name, region string, population int64) models.CountryRecord {
	return models.CountryRecord{Name: name, Region: region, Population: population}
}

func populations(records []models.CountryRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.Population
	}
	return out
}

func names(records []models.CountryRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func sample() []models.CountryRecord {
	return []models.CountryRecord{
		country("A", "Asia", 500),
		country("E", "Europe", 2000),
		country("B", "Asia", 100),
	}
}

func TestShape(t *testing.T) {
	t.Run("top ten global orders by population", func(t *testing.T) {
		result := Shape(sample(), models.TopTenGlobal, models.AllRegions)

		require.Len(t, result.Groups, 1)
		assert.Empty(t, result.Groups[0].Label)
		assert.Equal(t, []int64{2000, 500, 100}, populations(result.Groups[0].Records))
	})

	t.Run("all by continent groups lexicographically", func(t *testing.T) {
		result := Shape(sample(), models.AllByContinent, models.AllRegions)

		require.Len(t, result.Groups, 2)
		assert.Equal(t, "Asia", result.Groups[0].Label)
		assert.Equal(t, "Europe", result.Groups[1].Label)
		assert.Equal(t, []int64{500, 100}, populations(result.Groups[0].Records))
		assert.Equal(t, []int64{2000}, populations(result.Groups[1].Records))
	})

	t.Run("top ten global truncates", func(t *testing.T) {
		records := []models.CountryRecord{}
		for i := 0; i < 25; i++ {
			records = append(records, country(fmt.Sprintf("c%d", i), "Asia", int64(i)))
		}

		result := Shape(records, models.TopTenGlobal, models.AllRegions)

		require.Len(t, result.Groups, 1)
		require.Len(t, result.Groups[0].Records, 10)
		assert.Equal(t, int64(24), result.Groups[0].Records[0].Population)
		assert.Equal(t, int64(15), result.Groups[0].Records[9].Population)
	})

	t.Run("all by continent does not truncate", func(t *testing.T) {
		records := []models.CountryRecord{}
		for i := 0; i < 15; i++ {
			records = append(records, country(fmt.Sprintf("e%d", i), "Europe", int64(i)))
		}

		result := Shape(records, models.AllByContinent, models.AllRegions)

		require.Len(t, result.Groups, 1)
		assert.Len(t, result.Groups[0].Records, 15)
	})

	t.Run("top ten per continent truncates each group", func(t *testing.T) {
		records := []models.CountryRecord{}
		for i := 0; i < 12; i++ {
			records = append(records, country(fmt.Sprintf("e%d", i), "Europe", int64(i)))
			records = append(records, country(fmt.Sprintf("a%d", i), "Africa", int64(100+i)))
		}
		records = append(records, country("o", "Oceania", 1))

		result := Shape(records, models.TopTenPerContinent, models.AllRegions)

		require.Len(t, result.Groups, 3)
		assert.Equal(t, "Africa", result.Groups[0].Label)
		assert.Len(t, result.Groups[0].Records, 10)
		assert.Equal(t, int64(111), result.Groups[0].Records[0].Population)
		assert.Equal(t, "Europe", result.Groups[1].Label)
		assert.Len(t, result.Groups[1].Records, 10)
		assert.Equal(t, "Oceania", result.Groups[2].Label)
		assert.Len(t, result.Groups[2].Records, 1)
	})

	t.Run("filter applies before ranking", func(t *testing.T) {
		result := Shape(sample(), models.TopTenGlobal, "Asia")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, []string{"A", "B"}, names(result.Groups[0].Records))
	})

	t.Run("filter with grouped view yields single group", func(t *testing.T) {
		result := Shape(sample(), models.AllByContinent, "Europe")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Europe", result.Groups[0].Label)
	})

	t.Run("empty input yields zero groups", func(t *testing.T) {
		for _, mode := range models.ViewModes {
			result := Shape(nil, mode, models.AllRegions)
			assert.NotNil(t, result.Groups)
			assert.Empty(t, result.Groups)
			assert.True(t, result.Empty())
		}
	})

	t.Run("filter matching nothing yields zero groups", func(t *testing.T) {
		result := Shape(sample(), models.TopTenGlobal, "Oceania")
		assert.Empty(t, result.Groups)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := sample()
		snapshot := slices.Clone(input)

		Shape(input, models.TopTenGlobal, models.AllRegions)
		Shape(input, models.AllByContinent, models.AllRegions)
		Shape(input, models.TopTenPerContinent, "Asia")

		assert.Equal(t, snapshot, input)
	})

	t.Run("records mode and region", func(t *testing.T) {
		result := Shape(sample(), models.TopTenPerContinent, "Asia")
		assert.Equal(t, models.TopTenPerContinent, result.Mode)
		assert.Equal(t, models.RegionFilter("Asia"), result.Region)
	})
}

func TestFilterByRegion(t *testing.T) {
	t.Run("all returns input unchanged", func(t *testing.T) {
		input := sample()
		assert.Equal(t, input, FilterByRegion(input, models.AllRegions))
	})

	t.Run("keeps matching records in order", func(t *testing.T) {
		filtered := FilterByRegion(sample(), "Asia")
		assert.Equal(t, []string{"A", "B"}, names(filtered))
		for _, r := range filtered {
			assert.Equal(t, "Asia", r.Region)
		}
	})

	t.Run("is case sensitive", func(t *testing.T) {
		assert.Empty(t, FilterByRegion(sample(), "asia"))
	})
}

func TestRankDescending(t *testing.T) {
	t.Run("ties keep input order", func(t *testing.T) {
		input := []models.CountryRecord{
			country("first", "Asia", 10),
			country("big", "Asia", 50),
			country("second", "Europe", 10),
			country("third", "Africa", 10),
		}

		ranked := RankDescending(input)

		assert.Equal(t, []string{"big", "first", "second", "third"}, names(ranked))
		assert.Equal(t, "first", input[0].Name)
	})

	t.Run("nil input gives empty slice", func(t *testing.T) {
		ranked := RankDescending(nil)
		assert.NotNil(t, ranked)
		assert.Empty(t, ranked)
	})
}

func TestTopN(t *testing.T) {
	input := sample()

	assert.Len(t, TopN(input, 10), 3)
	assert.Equal(t, []string{"A", "E"}, names(TopN(input, 2)))
	assert.Empty(t, TopN(input, 0))
	assert.Empty(t, TopN(input, -1))
	assert.Empty(t, TopN(nil, 10))
}

func TestGroupByRegion(t *testing.T) {
	t.Run("labels are distinct and sorted", func(t *testing.T) {
		input := []models.CountryRecord{
			country("x", "Oceania", 1),
			country("y", "Americas", 2),
			country("z", "Oceania", 3),
			country("w", "Africa", 4),
		}

		groups := GroupByRegion(input)

		labels := []string{}
		for _, g := range groups {
			labels = append(labels, g.Label)
		}
		assert.Equal(t, []string{"Africa", "Americas", "Oceania"}, labels)
		assert.Equal(t, []string{"z", "x"}, names(groups[2].Records))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, GroupByRegion(nil))
	})
}

var regionGen = rapid.SampledFrom([]string{"Africa", "Americas", "Antarctic", "Asia", "Europe", "Oceania"})

func recordsGen() *rapid.Generator[[]models.CountryRecord] {
	return rapid.Custom(func(t *rapid.T) []models.CountryRecord {
		n := rapid.IntRange(0, 60).Draw(t, "n")
		records := make([]models.CountryRecord, n)
		for i := range records {
			records[i] = models.CountryRecord{
				Name:       fmt.Sprintf("c%d", i),
				Region:     regionGen.Draw(t, "region"),
				Population: rapid.Int64Range(0, 50).Draw(t, "population"),
			}
		}
		return records
	})
}

func TestShaperProperties(t *testing.T) {
	t.Run("rank is non-increasing permutation", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			input := recordsGen().Draw(t, "records")
			ranked := RankDescending(input)

			if len(ranked) != len(input) {
				t.Fatalf("length changed: %d != %d", len(ranked), len(input))
			}
			for i := 1; i < len(ranked); i++ {
				if ranked[i-1].Population < ranked[i].Population {
					t.Fatalf("not sorted at %d: %d < %d", i, ranked[i-1].Population, ranked[i].Population)
				}
			}
			in, out := names(input), names(ranked)
			sort.Strings(in)
			sort.Strings(out)
			if !slices.Equal(in, out) {
				t.Fatalf("not a permutation")
			}
		})
	})

	t.Run("top ten is a prefix of the ranking", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			input := recordsGen().Draw(t, "records")
			ranked := RankDescending(input)
			top := TopN(ranked, TopLimit)

			if len(top) != min(TopLimit, len(input)) {
				t.Fatalf("got %d records, want %d", len(top), min(TopLimit, len(input)))
			}
			if diff := cmp.Diff(ranked[:len(top)], top); diff != "" {
				t.Fatalf("not a prefix (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("groups cover distinct regions in order", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			input := recordsGen().Draw(t, "records")
			groups := GroupByRegion(input)

			want := map[string]bool{}
			for _, r := range input {
				want[r.Region] = true
			}
			if len(groups) != len(want) {
				t.Fatalf("got %d groups, want %d", len(groups), len(want))
			}
			total := 0
			for i, g := range groups {
				if !want[g.Label] {
					t.Fatalf("unexpected group %q", g.Label)
				}
				if i > 0 && groups[i-1].Label >= g.Label {
					t.Fatalf("groups out of order: %q then %q", groups[i-1].Label, g.Label)
				}
				total += len(g.Records)
			}
			if total != len(input) {
				t.Fatalf("grouped %d records, want %d", total, len(input))
			}
		})
	})

	t.Run("shape is idempotent", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			input := recordsGen().Draw(t, "records")
			mode := rapid.SampledFrom(models.ViewModes).Draw(t, "mode")
			filter := rapid.SampledFrom(models.Regions).Draw(t, "filter")

			first := Shape(input, mode, filter)
			second := Shape(input, mode, filter)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("shape not idempotent (-first +second):\n%s", diff)
			}
		})
	})

	t.Run("filter keeps only the requested region", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			input := recordsGen().Draw(t, "records")
			region := regionGen.Draw(t, "filter")

			for _, r := range FilterByRegion(input, models.RegionFilter(region)) {
				if r.Region != region {
					t.Fatalf("record %s in %s leaked through %s filter", r.Name, r.Region, region)
				}
			}
		})
	})
}
