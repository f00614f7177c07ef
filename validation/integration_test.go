package validation

import (
	"testing"

	"github.com/yildizanil/emugo/borehole"
	"github.com/yildizanil/emugo/gp"
	"github.com/yildizanil/emugo/sampling"
)

var _ SurrogateFitter = (*gp.GaussianProcessRegressor)(nil)

func TestLeaveOneOutWorkflow(t *testing.T) {
	const n = 40

	X, err := sampling.LatinHypercube(n, sampling.NewSource(1))
	if err != nil {
		t.Fatalf("LatinHypercube() error = %v", err)
	}
	ds, err := borehole.NewDataset(X)
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}

	table, err := NewComparator(gp.NewGaussianProcessRegressor()).Compare(ds)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(table.Records) != n {
		t.Fatalf("len(Records) = %d, want %d", len(table.Records), n)
	}

	s, err := table.Summarize()
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.R2 < 0.7 {
		t.Errorf("cross-validated R2 = %v, want >= 0.7", s.R2)
	}
	if s.RMSE <= 0 {
		t.Errorf("RMSE = %v, want > 0", s.RMSE)
	}
	if s.Coverage95 < 0.5 || s.Coverage95 > 1 {
		t.Errorf("Coverage95 = %v, want in [0.5, 1]", s.Coverage95)
	}

	// The table preserves dataset order.
	for i, rec := range table.Records {
		if rec.Observed != ds.Y.AtVec(i) {
			t.Fatalf("record %d out of order", i)
		}
	}
}
