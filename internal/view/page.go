// Package view renders the explorer HTML page: the controls, the chart and
// the card or table presentation of a shaped result.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/parser"
)

type Display string

const (
	DisplayCards Display = "cards"
	DisplayTable Display = "table"
)

func ParseDisplay(s string) Display {
	if Display(s) == DisplayTable {
		return DisplayTable
	}
	return DisplayCards
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Section struct {
	Label    string
	FocusURL string
	Focused  bool
	Cards    []models.Card
}

type Page struct {
	Title    string
	Mode     models.ViewMode
	Region   models.RegionFilter
	Display  Display
	Focus    string
	Views    []Option
	Regions  []Option
	Displays []Option
	Chart    template.HTML
	Sections []Section
	Rows     []models.TableRow
	Empty    bool
}

// NewPage assembles the page model. svgChart is the rendered chart document.
func NewPage(result models.ShapedResult, display Display, focus string, svgChart []byte) Page {
	page := Page{
		Title:   "Global Countries Explorer",
		Mode:    result.Mode,
		Region:  result.Region,
		Display: display,
		Focus:   focus,
		Chart:   template.HTML(stripProlog(svgChart)),
		Rows:    parser.FormatTable(result),
		Empty:   result.Empty(),
	}

	for _, m := range models.ViewModes {
		page.Views = append(page.Views, Option{Value: string(m), Label: m.Title(), Selected: m == result.Mode})
	}
	for _, r := range models.Regions {
		page.Regions = append(page.Regions, Option{Value: string(r), Label: r.Title(), Selected: r == result.Region})
	}
	for _, d := range []Display{DisplayCards, DisplayTable} {
		label := "Cards"
		if d == DisplayTable {
			label = "Table"
		}
		page.Displays = append(page.Displays, Option{Value: string(d), Label: label, Selected: d == display})
	}

	for _, g := range parser.FormatCards(result) {
		section := Section{Label: g.Label, Cards: g.Cards, Focused: g.Label != "" && g.Label == focus}
		if g.Label != "" {
			section.FocusURL = ExploreURL(result.Mode, result.Region, display, g.Label)
		}
		page.Sections = append(page.Sections, section)
	}

	return page
}

// ExploreURL links back to the explore page with the given selection.
func ExploreURL(mode models.ViewMode, region models.RegionFilter, display Display, focus string) string {
	q := url.Values{}
	q.Set("view", string(mode))
	q.Set("region", string(region))
	q.Set("display", string(display))
	if focus != "" {
		q.Set("focus", focus)
	}
	return "/explore?" + q.Encode() + "#chart"
}

func Render(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// stripProlog drops the XML declaration so the SVG can be inlined in HTML.
func stripProlog(doc []byte) []byte {
	if i := bytes.Index(doc, []byte("<svg")); i > 0 {
		return doc[i:]
	}
	return doc
}
