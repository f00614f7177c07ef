package validation

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/yildizanil/emugo/pkg/errors"
)

// SaveScatterPlot renders the table as a true-versus-predicted scatter plot
// with the identity line and writes it to path. The image format follows the
// file extension (.png, .svg, .pdf).
func (t *Table) SaveScatterPlot(path string) error {
	if len(t.Records) == 0 {
		return errors.NewValueError("Table.SaveScatterPlot", "empty table")
	}

	p := plot.New()
	p.Title.Text = "Leave-one-out validation"
	p.X.Label.Text = "simulated flow rate [m³/yr]"
	p.Y.Label.Text = "emulated flow rate [m³/yr]"

	xys := make(plotter.XYs, len(t.Records))
	lo, hi := t.Records[0].Observed, t.Records[0].Observed
	for i, rec := range t.Records {
		xys[i].X = rec.Observed
		xys[i].Y = rec.PredictedMean
		if rec.Observed < lo {
			lo = rec.Observed
		}
		if rec.Observed > hi {
			hi = rec.Observed
		}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "building scatter")
	}

	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return errors.Wrap(err, "building identity line")
	}

	p.Add(identity, scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving plot to %s", path)
	}
	return nil
}
