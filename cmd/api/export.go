package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/terrascope/worldview/internal/chart"
	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/parser"
	"github.com/terrascope/worldview/internal/source"
)

var (
	exportView   string
	exportRegion string
	exportFocus  string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch once, write the chart as SVG and print the table",
	Example: `  api export --view top10continent --region Europe --out europe.svg
  api export --view allcountries --focus Asia`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseViewMode(exportView)
		if err != nil {
			return err
		}

		src := source.New(cfg.Source, logger, nil)
		result := parser.Shape(src.FetchOrEmpty(cmd.Context()), mode, models.ParseRegionFilter(exportRegion))

		spec, err := parser.BuildChartSpec(result, exportFocus)
		if err != nil {
			return err
		}

		if exportOut != "" {
			charts := chart.NewController(chart.DefaultOptions(), logger, nil)
			rendered, err := charts.Replace(spec)
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportOut, rendered.SVG, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			charts.Release()
			logger.Info("chart written", zap.String("path", exportOut), zap.Int("bars", len(spec.Labels)))
		}

		return printTable(cmd.OutOrStdout(), result)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportView, "view", string(models.TopTenGlobal), "view mode: top10global, allcountries or top10continent")
	exportCmd.Flags().StringVar(&exportRegion, "region", string(models.AllRegions), "region filter")
	exportCmd.Flags().StringVar(&exportFocus, "focus", "", "chart a single continent group")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the chart SVG to this path")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func printTable(w io.Writer, result models.ShapedResult) error {
	if result.Empty() {
		_, err := fmt.Fprintln(w, "No countries to show.")
		return err
	}

	for _, g := range result.Groups {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "Country", "Capital", "Population", "Area", "Density", "Languages", "Currencies").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		for i, r := range g.Records {
			card := parser.FormatCard(r)
			t.Row(strconv.Itoa(i+1), card.Name, card.Capital, card.Population, card.Area, card.Density, card.Languages, card.Currencies)
		}

		if g.Label != "" {
			if _, err := fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(g.Label)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	return nil
}
