package errors

import (
	"math"
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("GaussianProcessRegressor", "Predict")

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("As() failed to extract *NotFittedError from %v", err)
	}
	if nfe.ModelName != "GaussianProcessRegressor" {
		t.Errorf("ModelName = %q, want %q", nfe.ModelName, "GaussianProcessRegressor")
	}
	if !strings.Contains(err.Error(), "not fitted yet") {
		t.Errorf("Error() = %q, want substring %q", err.Error(), "not fitted yet")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("n", "must be a positive integer", -3)

	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatalf("As() failed to extract *ValidationError from %v", err)
	}
	if ve.ParamName != "n" {
		t.Errorf("ParamName = %q, want %q", ve.ParamName, "n")
	}
	if !strings.Contains(err.Error(), "got: -3") {
		t.Errorf("Error() = %q, want the offending value in the message", err.Error())
	}
}

func TestDomainError(t *testing.T) {
	err := NewDomainError("FlowRate", "radiusInfluence", 0.1, "must exceed radiusBorehole")

	var de *DomainError
	if !As(err, &de) {
		t.Fatalf("As() failed to extract *DomainError from %v", err)
	}
	if de.Parameter != "radiusInfluence" {
		t.Errorf("Parameter = %q, want %q", de.Parameter, "radiusInfluence")
	}
	if !strings.Contains(err.Error(), "outside the physical domain") {
		t.Errorf("Error() = %q, want substring %q", err.Error(), "outside the physical domain")
	}
}

func TestConvergenceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantSub string
	}{
		{
			name:    "with message",
			err:     NewConvergenceError("profile likelihood search", 64, "no finite objective value found"),
			wantSub: "no finite objective value found",
		},
		{
			name:    "without message",
			err:     NewConvergenceError("profile likelihood search", 64, ""),
			wantSub: "did not converge after 64 iterations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ce *ConvergenceError
			if !As(tt.err, &ce) {
				t.Fatalf("As() failed to extract *ConvergenceError from %v", tt.err)
			}
			if ce.Iterations != 64 {
				t.Errorf("Iterations = %d, want 64", ce.Iterations)
			}
			if !strings.Contains(tt.err.Error(), tt.wantSub) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.wantSub)
			}
		})
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("GaussianProcessRegressor.Predict", 8, 5, 1)
	if !strings.Contains(err.Error(), "Expected 8, got 5") {
		t.Errorf("Error() = %q, want expected/got counts in the message", err.Error())
	}
}

func TestErrorWrapping(t *testing.T) {
	base := NewValueError("FlowRate", "denominator is zero")
	wrapped := Wrap(base, "evaluating sample 12")

	var ve *ValueError
	if !As(wrapped, &ve) {
		t.Fatalf("As() failed to find *ValueError in wrapped chain %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "evaluating sample 12") {
		t.Errorf("wrapped message lost: %q", wrapped.Error())
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(func(w error) {})

	warning := NewConvergenceWarning("profile likelihood search", 32, "objective plateaued")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "profile likelihood search") {
		t.Errorf("captured warning = %q, want the algorithm name", captured.Error())
	}
}

func TestCheckNumericalStability(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{name: "finite values", values: []float64{1.0, -2.5, 3e10}, wantErr: false},
		{name: "contains NaN", values: []float64{1.0, math.NaN(), 3.0}, wantErr: true},
		{name: "contains Inf", values: []float64{1.0, math.Inf(1), 3.0}, wantErr: true},
		{name: "empty", values: nil, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckNumericalStability("test_op", tt.values, 0)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckNumericalStability() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
