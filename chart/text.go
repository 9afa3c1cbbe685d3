package chart

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/floats"

	"github.com/vegasq/surveystat/survey"
)

// TextBarWidth is the number of cells used by the longest text bar
const TextBarWidth = 40

// RenderText writes res as a text bar chart, largest value first.
func RenderText(w io.Writer, res *survey.Result, cfg Config) error {
	if res == nil || res.Len() == 0 {
		return ErrEmptyResult
	}
	cfg = cfg.WithDefaults()

	values := make([]float64, res.Len())
	labels := make([]string, res.Len())
	labelWidth := runewidth.StringWidth(cfg.YLabel)
	for i, e := range res.Entries {
		values[i] = e.Value
		labels[i] = strings.TrimSpace(cfg.label(e.Token, e.Value, res))
		if lw := runewidth.StringWidth(labels[i]); lw > labelWidth {
			labelWidth = lw
		}
	}
	max := floats.Max(values)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", cfg.Title)
	fmt.Fprintf(bw, "%s | %s\n", runewidth.FillRight(cfg.YLabel, labelWidth), cfg.XLabel)
	fmt.Fprintf(bw, "%s-+-%s\n", strings.Repeat("-", labelWidth), strings.Repeat("-", TextBarWidth))

	for i, v := range values {
		cells := 0
		if max > 0 && v > 0 {
			cells = int(v / max * TextBarWidth)
			if cells == 0 {
				cells = 1
			}
		}
		fmt.Fprintf(bw, "%s | %s %s\n",
			runewidth.FillRight(labels[i], labelWidth),
			strings.Repeat("#", cells),
			strconv.FormatFloat(v, 'f', -1, 64),
		)
	}
	return bw.Flush()
}
