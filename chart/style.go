package chart

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style is a named set of chart colours.
type Style struct {
	Name       string
	Background color.Color
	Bar        color.Color
	Text       color.Color

	// Grid is the colour of the value grid lines; nil draws none
	Grid color.Color
}

// Styles lists the built-in styles by name
var Styles = map[string]Style{
	"default": {
		Name:       "default",
		Background: color.White,
		Bar:        color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		Text:       color.Black,
	},
	"seaborn": {
		Name:       "seaborn",
		Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff},
		Bar:        color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
		Text:       color.RGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff},
		Grid:       color.White,
	},
	"ggplot": {
		Name:       "ggplot",
		Background: color.RGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
		Bar:        color.RGBA{R: 0xe2, G: 0x4a, B: 0x33, A: 0xff},
		Text:       color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		Grid:       color.White,
	},
	"grayscale": {
		Name:       "grayscale",
		Background: color.White,
		Bar:        color.Gray{Y: 0x60},
		Text:       color.Black,
		Grid:       color.Gray{Y: 0xd0},
	},
}

// StyleNames returns the built-in style names, sorted
func StyleNames() []string {
	names := make([]string, 0, len(Styles))
	for name := range Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupStyle returns the style registered under name
func LookupStyle(name string) (Style, error) {
	st, ok := Styles[strings.ToLower(name)]
	if !ok {
		return Style{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownStyle, name, strings.Join(StyleNames(), ", "))
	}
	return st, nil
}

// apply colours the plot and adds the grid, which must precede the bars
func (s Style) apply(p *plot.Plot) {
	p.BackgroundColor = s.Background

	p.Title.TextStyle.Color = s.Text
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Label.TextStyle.Color = s.Text
		axis.Tick.Label.Color = s.Text
		axis.LineStyle.Color = s.Text
		axis.Tick.LineStyle.Color = s.Text
	}

	if s.Grid != nil {
		grid := plotter.NewGrid()
		grid.Vertical.Color = s.Grid
		grid.Vertical.Width = vg.Points(1)
		grid.Horizontal.Color = nil
		p.Add(grid)
	}
}
