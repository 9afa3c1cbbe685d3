package chart

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vegasq/surveystat/survey"
)

// maxBarWidth caps the thickness of a single bar
const maxBarWidth = 20

// Render draws res using cfg. With cfg.Path set the chart is saved as an
// image; otherwise a text chart is written to w.
func Render(w io.Writer, res *survey.Result, cfg Config) error {
	if res == nil || res.Len() == 0 {
		return ErrEmptyResult
	}
	cfg = cfg.WithDefaults()

	st, err := LookupStyle(cfg.Style)
	if err != nil {
		return err
	}

	if cfg.Path == "" {
		return RenderText(w, res, cfg)
	}

	p, err := newBarPlot(res, cfg, st)
	if err != nil {
		return err
	}
	if err := save(p, cfg); err != nil {
		return err
	}
	slog.Debug("chart: saved", "path", cfg.Path, "bars", res.Len(), "dpi", cfg.DPI, "style", st.Name)
	return nil
}

// newBarPlot builds a horizontal bar plot with the largest value on top
func newBarPlot(res *survey.Result, cfg Config, st Style) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	st.apply(p)

	n := res.Len()
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i, e := range res.Entries {
		j := n - 1 - i
		values[j] = e.Value
		labels[j] = cfg.label(e.Token, e.Value, res)
	}

	width := vg.Length(cfg.Height) * vg.Inch * 0.6 / vg.Length(n)
	if width > maxBarWidth {
		width = maxBarWidth
	}

	bars, err := plotter.NewBarChart(values, width)
	if err != nil {
		return nil, fmt.Errorf("chart: failed to build bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = st.Bar
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)
	p.X.Min = 0

	return p, nil
}

// save writes p to cfg.Path. Raster formats honour cfg.DPI.
func save(p *plot.Plot, cfg Config) error {
	w := vg.Length(cfg.Width) * vg.Inch
	h := vg.Length(cfg.Height) * vg.Inch
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(cfg.Path)), ".")

	switch ext {
	case "svg", "pdf", "eps":
		return p.Save(w, h, cfg.Path)
	case "png", "jpg", "jpeg", "tif", "tiff":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedImage, filepath.Ext(cfg.Path))
	}

	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(cfg.DPI))
	p.Draw(draw.New(c))

	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("chart: failed to create image: %w", err)
	}

	var writer io.WriterTo
	switch ext {
	case "png":
		writer = vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		writer = vgimg.JpegCanvas{Canvas: c}
	default:
		writer = vgimg.TiffCanvas{Canvas: c}
	}

	_, werr := writer.WriteTo(f)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("chart: failed to encode image: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("chart: failed to close image: %w", cerr)
	}
	return nil
}
