package validation

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/yildizanil/emugo/borehole"
	"github.com/yildizanil/emugo/pkg/errors"
)

// WriteCSV writes the comparison table as delimited text: one row per sample
// with the input parameters, the observed flow rate, the leave-one-out
// predictive mean and the predictive standard deviation.
func (t *Table) WriteCSV(w io.Writer) error {
	if len(t.Records) == 0 {
		return errors.NewValueError("Table.WriteCSV", "empty table")
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, borehole.NumParams+4)
	header = append(header, "index")
	for _, r := range borehole.ParamRanges {
		header = append(header, r.Name)
	}
	header = append(header, "flowRate", "predictedMean", "predictedSD")
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}

	row := make([]string, 0, len(header))
	for _, rec := range t.Records {
		row = row[:0]
		row = append(row, strconv.Itoa(rec.Index))
		for _, v := range rec.Params.Row() {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row,
			strconv.FormatFloat(rec.Observed, 'g', -1, 64),
			strconv.FormatFloat(rec.PredictedMean, 'g', -1, 64),
			strconv.FormatFloat(math.Sqrt(rec.PredictedVariance), 'g', -1, 64),
		)
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", rec.Index)
		}
	}

	cw.Flush()
	return errors.WithStack(cw.Error())
}
