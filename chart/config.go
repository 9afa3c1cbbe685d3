package chart

import (
	"errors"
	"fmt"

	"github.com/vegasq/surveystat/survey"
)

var (
	// ErrEmptyResult is returned when there is nothing to draw
	ErrEmptyResult = errors.New("chart: result has no entries")

	// ErrUnknownStyle is returned for a style name missing from Styles
	ErrUnknownStyle = errors.New("chart: unknown style")

	// ErrUnsupportedImage is returned for file extensions the renderer cannot write
	ErrUnsupportedImage = errors.New("chart: unsupported image format")
)

// Default chart settings.
const (
	DefaultTitle  = "Data"
	DefaultXLabel = "X-Axis"
	DefaultYLabel = "Y-Axis"
	DefaultDPI    = 300
	DefaultStyle  = "seaborn"
	DefaultWidth  = 8.0
	DefaultHeight = 6.0
)

// Config holds the settings for one chart.
type Config struct {
	Title  string `yaml:"title" toml:"title"`
	XLabel string `yaml:"xlabel" toml:"xlabel"`
	YLabel string `yaml:"ylabel" toml:"ylabel"`

	// Path is the image file to write; empty draws a text chart instead
	Path string `yaml:"path" toml:"path"`

	// DPI is the resolution of raster images
	DPI int `yaml:"dpi" toml:"dpi"`

	// Style is one of the names in Styles
	Style string `yaml:"style" toml:"style"`

	// HidePercent drops the percentage-of-denominator annotation from labels
	HidePercent bool `yaml:"hide_percent" toml:"hide_percent"`

	// Width and Height are the image size in inches
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// DefaultConfig returns the settings used for unset Config fields
func DefaultConfig() Config {
	return Config{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		DPI:    DefaultDPI,
		Style:  DefaultStyle,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// WithDefaults returns c with every zero field set from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.XLabel == "" {
		c.XLabel = d.XLabel
	}
	if c.YLabel == "" {
		c.YLabel = d.YLabel
	}
	if c.DPI <= 0 {
		c.DPI = d.DPI
	}
	if c.Style == "" {
		c.Style = d.Style
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	return c
}

// Validate checks the style name
func (c Config) Validate() error {
	if _, err := LookupStyle(c.WithDefaults().Style); err != nil {
		return err
	}
	return nil
}

// label returns the bar label for an entry of res
func (c Config) label(token string, value float64, res *survey.Result) string {
	switch {
	case c.HidePercent:
		return token
	case res.Percent:
		return fmt.Sprintf("%s %.2f%% ", token, value)
	case res.Denominator <= 0:
		return token
	}
	return fmt.Sprintf("%s %.2f%% ", token, value/float64(res.Denominator)*100)
}
