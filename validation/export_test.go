package validation

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/yildizanil/emugo/borehole"
)

func exportTable() *Table {
	p, _ := borehole.FromRow([]float64{0.1, 20000, 100000, 1050, 90, 760, 1400, 11000})
	return &Table{Records: []Record{
		{Index: 0, Params: p, Observed: 71.2, PredictedMean: 70.8, PredictedVariance: 2.25},
		{Index: 1, Params: p, Observed: 55.0, PredictedMean: 56.1, PredictedVariance: 4.0},
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := exportTable().WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("CSV has %d rows, want 3", len(rows))
	}

	wantHeader := []string{"index"}
	for _, r := range borehole.ParamRanges {
		wantHeader = append(wantHeader, r.Name)
	}
	wantHeader = append(wantHeader, "flowRate", "predictedMean", "predictedSD")

	if len(rows[0]) != len(wantHeader) {
		t.Fatalf("header has %d columns, want %d", len(rows[0]), len(wantHeader))
	}
	for i, name := range wantHeader {
		if rows[0][i] != name {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], name)
		}
	}

	// Standard deviation column holds sqrt of the stored variance.
	sd, err := strconv.ParseFloat(rows[1][len(rows[1])-1], 64)
	if err != nil {
		t.Fatalf("parsing predictedSD: %v", err)
	}
	if math.Abs(sd-1.5) > 1e-12 {
		t.Errorf("predictedSD = %v, want 1.5", sd)
	}

	if rows[2][0] != "1" {
		t.Errorf("second record index column = %q, want \"1\"", rows[2][0])
	}
}

func TestWriteCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Table{}).WriteCSV(&buf); err == nil {
		t.Error("WriteCSV() on empty table: error = nil, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("empty table wrote %d bytes", buf.Len())
	}
}

func TestSaveScatterPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loo.png")
	if err := exportTable().SaveScatterPlot(path); err != nil {
		t.Fatalf("SaveScatterPlot() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestSaveScatterPlotEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loo.png")
	if err := (&Table{}).SaveScatterPlot(path); err == nil {
		t.Error("SaveScatterPlot() on empty table: error = nil, want error")
	}
}
