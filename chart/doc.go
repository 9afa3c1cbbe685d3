// Package chart draws survey results as horizontal bar charts.
//
// Render takes the result and a Config. Nothing is read from or stored in
// package state, so two charts with different styles can be drawn back to
// back.
//
//	res, err := s.Distribution("LanguageHaveWorkedWith", survey.WithTop(15))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := chart.DefaultConfig()
//	cfg.Title = "Most Popular Programming Languages"
//	cfg.XLabel = "Respondents"
//	cfg.YLabel = "Language"
//	cfg.Path = "languages.png"
//	if err := chart.Render(os.Stdout, res, cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// With an empty Path the chart is drawn as text on the writer instead of
// being saved. Image charts are drawn with gonum.org/v1/plot; the format
// follows the file extension (png, jpg, tif, svg, pdf, eps).
//
// Labels carry each value as a percentage of the result denominator unless
// HidePercent is set. For results that are already percentages, set
// HidePercent to avoid normalizing twice.
package chart
