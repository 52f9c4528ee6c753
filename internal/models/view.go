// Package models defines the core data structures shared by the explorer.
// It includes the country record, the upstream wire format and the shaped views.
package models

import (
	"fmt"
	"strings"
)

type ViewMode string

const (
	TopTenGlobal       ViewMode = "top10global"
	AllByContinent     ViewMode = "allcountries"
	TopTenPerContinent ViewMode = "top10continent"
)

// ViewModes lists the modes in the order the controls offer them.
var ViewModes = []ViewMode{TopTenGlobal, AllByContinent, TopTenPerContinent}

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.TrimSpace(s)) {
	case "":
		return TopTenGlobal, nil
	case TopTenGlobal:
		return TopTenGlobal, nil
	case AllByContinent:
		return AllByContinent, nil
	case TopTenPerContinent:
		return TopTenPerContinent, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

func (m ViewMode) Title() string {
	switch m {
	case AllByContinent:
		return "All Countries by Continent"
	case TopTenPerContinent:
		return "Top 10 Countries by Continent"
	default:
		return "Top 10 Countries Globally"
	}
}

// Grouped reports whether the mode buckets records per continent.
func (m ViewMode) Grouped() bool {
	return m == AllByContinent || m == TopTenPerContinent
}

type RegionFilter string

const AllRegions RegionFilter = "all"

// Regions lists the region options offered by the controls.
var Regions = []RegionFilter{AllRegions, "Asia", "Europe", "Africa", "Americas", "Oceania"}

func ParseRegionFilter(s string) RegionFilter {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(AllRegions)) {
		return AllRegions
	}
	return RegionFilter(s)
}

func (r RegionFilter) IsAll() bool {
	return r == AllRegions
}

func (r RegionFilter) Title() string {
	if r.IsAll() {
		return "All Regions"
	}
	return string(r)
}

type Group struct {
	Label   string          `json:"label,omitempty"`
	Records []CountryRecord `json:"records"`
}

type ShapedResult struct {
	Mode   ViewMode     `json:"mode"`
	Region RegionFilter `json:"region"`
	Groups []Group      `json:"groups"`
}

// Records flattens the groups in display order.
func (s ShapedResult) Records() []CountryRecord {
	var n int
	for _, g := range s.Groups {
		n += len(g.Records)
	}
	out := make([]CountryRecord, 0, n)
	for _, g := range s.Groups {
		out = append(out, g.Records...)
	}
	return out
}

// Group returns the group with the given label.
func (s ShapedResult) Group(label string) (Group, bool) {
	for _, g := range s.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return Group{}, false
}

func (s ShapedResult) Empty() bool {
	for _, g := range s.Groups {
		if len(g.Records) > 0 {
			return false
		}
	}
	return true
}
