package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/surveystat/survey"
)

func sampleResult() *survey.Result {
	return &survey.Result{
		Entries: []survey.Entry{
			{Token: "Python", Value: 2},
			{Token: "Go", Value: 1},
		},
		Denominator: 3,
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{Title: "Languages"}.WithDefaults()

	assert.Equal(t, "Languages", cfg.Title)
	assert.Equal(t, DefaultXLabel, cfg.XLabel)
	assert.Equal(t, DefaultYLabel, cfg.YLabel)
	assert.Equal(t, DefaultDPI, cfg.DPI)
	assert.Equal(t, DefaultStyle, cfg.Style)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Style: "GGPlot"}.Validate())
	assert.ErrorIs(t, Config{Style: "neon"}.Validate(), ErrUnknownStyle)
}

func TestStyleNames(t *testing.T) {
	assert.Equal(t, []string{"default", "ggplot", "grayscale", "seaborn"}, StyleNames())
}

func TestLabel(t *testing.T) {
	res := sampleResult()

	tests := []struct {
		name string
		cfg  Config
		res  *survey.Result
		want string
	}{
		{"share of denominator", Config{}, res, "Python 66.67% "},
		{"hidden", Config{HidePercent: true}, res, "Python"},
		{"already percent", Config{}, &survey.Result{Denominator: 3, Percent: true}, "Python 2.00% "},
		{"no denominator", Config{}, &survey.Result{}, "Python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.label("Python", 2, tt.res))
		})
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), Config{Title: "Languages", XLabel: "Respondents", YLabel: "Language"})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Languages\n"))
	assert.Contains(t, out, "Respondents")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[4], "Python 66.67%")
	assert.Contains(t, lines[4], strings.Repeat("#", TextBarWidth)+" 2")
	assert.Contains(t, lines[5], "Go 33.33%")
	assert.Contains(t, lines[5], strings.Repeat("#", TextBarWidth/2)+" 1")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, &survey.Result{}, Config{}), ErrEmptyResult)
	assert.ErrorIs(t, Render(&buf, nil, Config{}), ErrEmptyResult)
	assert.Zero(t, buf.Len())
}

func TestRenderUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), Config{Style: "neon"})
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestRenderImage(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"chart.png", "chart.jpg", "chart.svg", "chart.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			err := Render(nil, sampleResult(), Config{Path: path, DPI: 72, Width: 4, Height: 3})
			require.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestRenderPNGSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, Render(nil, sampleResult(), Config{Path: path, DPI: 72, Style: "grayscale"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderUnsupportedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.bmp")
	err := Render(nil, sampleResult(), Config{Path: path})
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
