// Package models defines the core data structures shared by the explorer.
// It includes the country record, the upstream wire format and the shaped views.
package models

// Series holds the parallel arrays plotted for one record sequence.
type Series struct {
	Labels     []string  `json:"labels"`
	Population []float64 `json:"population"`
	Area       []float64 `json:"area"`
}

type ChartSpec struct {
	Title      string    `json:"title"`
	Labels     []string  `json:"labels"`
	Datasets   []Dataset `json:"datasets"`
	XAxisTitle string    `json:"x_axis_title"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"background_color"`
	BorderColor     string    `json:"border_color"`
	AxisID          string    `json:"axis_id"`
	AxisTitle       string    `json:"axis_title"`
	Logarithmic     bool      `json:"logarithmic"`
}

// Empty reports whether the chart has nothing to plot.
func (c ChartSpec) Empty() bool {
	return len(c.Labels) == 0
}

type Card struct {
	Name       string `json:"name"`
	FlagURL    string `json:"flag_url"`
	Region     string `json:"region"`
	Capital    string `json:"capital"`
	Population string `json:"population"`
	Area       string `json:"area"`
	Density    string `json:"density"`
	Languages  string `json:"languages"`
	Currencies string `json:"currencies"`
}

type TableRow struct {
	Rank int `json:"rank"`
	Card
}

type CardGroup struct {
	Label string `json:"label,omitempty"`
	Cards []Card `json:"cards"`
}
