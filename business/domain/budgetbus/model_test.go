package budgetbus

import (
	"testing"

	"github.com/granazap/painel/business/types/alertlevel"
	"github.com/granazap/painel/business/types/money"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		spent     string
		limit     string
		threshold float64
		want      alertlevel.Level
	}{
		{"under threshold", "100", "1000", 0.8, alertlevel.OK},
		{"at threshold", "800", "1000", 0.8, alertlevel.Warning},
		{"above threshold", "900", "1000", 0.8, alertlevel.Warning},
		{"at limit", "1000", "1000", 0.8, alertlevel.Exceeded},
		{"above limit", "1500", "1000", 0.8, alertlevel.Exceeded},
		{"just under threshold", "799.99", "1000", 0.8, alertlevel.OK},
		{"custom threshold", "500", "1000", 0.5, alertlevel.Warning},
		{"zero limit", "100", "0", 0.8, alertlevel.OK},
		{"zero spent", "0", "1000", 0.8, alertlevel.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(money.Parse(tt.spent), money.Parse(tt.limit), tt.threshold)
			if !got.Equal(tt.want) {
				t.Errorf("Classify(%s, %s, %v) = %s, want %s", tt.spent, tt.limit, tt.threshold, got, tt.want)
			}
		})
	}
}
