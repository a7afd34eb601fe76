package core

import (
	"math"
	"testing"
)

func TestEstimateTaxYearly(t *testing.T) {
	tests := []struct {
		name  string
		gross float64
		want  float64
	}{
		{name: "zero income", gross: 0, want: 0},
		{name: "below allowance", gross: 10000, want: 0},
		{name: "exactly allowance", gross: 12570, want: 0},
		{name: "just above allowance", gross: 12580, want: 2},
		{name: "top of basic band", gross: 50270, want: (50270 - 12570) * 0.2},
		{name: "into higher band", gross: 60270, want: 7540 + 10000*0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTaxYearly(tt.gross)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("EstimateTaxYearly(%v) = %v, want %v", tt.gross, got, tt.want)
			}
		})
	}
}
