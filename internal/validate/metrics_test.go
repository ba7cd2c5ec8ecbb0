package validate

import (
	"math"
	"testing"
)

func TestComputeMetrics(t *testing.T) {
	pair := MatchedPair{}
	finding := Finding{}

	tests := []struct {
		name          string
		partition     Partition
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
	}{
		{
			"both empty",
			Partition{},
			0, 0, 0,
		},
		{
			"perfect match",
			Partition{Matched: []MatchedPair{pair, pair}},
			1, 1, 1,
		},
		{
			"scanner only",
			Partition{FalsePositives: []Finding{finding}},
			0, 0, 0,
		},
		{
			"ground truth only",
			Partition{FalseNegatives: []Finding{finding}},
			0, 0, 0,
		},
		{
			"mixed",
			Partition{
				Matched:        []MatchedPair{pair, pair, pair},
				FalsePositives: []Finding{finding},
				FalseNegatives: []Finding{finding, finding, finding},
			},
			0.75, 0.5, 0.6,
		},
	}
	for _, tt := range tests {
		m := ComputeMetrics(tt.partition)
		if !closeTo(m.Precision, tt.wantPrecision) {
			t.Errorf("%s: precision = %v, want %v", tt.name, m.Precision, tt.wantPrecision)
		}
		if !closeTo(m.Recall, tt.wantRecall) {
			t.Errorf("%s: recall = %v, want %v", tt.name, m.Recall, tt.wantRecall)
		}
		if !closeTo(m.F1, tt.wantF1) {
			t.Errorf("%s: f1 = %v, want %v", tt.name, m.F1, tt.wantF1)
		}
	}
}

func TestComputeMetrics_NeverNaN(t *testing.T) {
	m := ComputeMetrics(Partition{})
	for name, v := range map[string]float64{"precision": m.Precision, "recall": m.Recall, "f1": m.F1} {
		if math.IsNaN(v) {
			t.Errorf("%s is NaN for empty partition, want 0", name)
		}
	}
}

func TestComputeMetrics_Bounds(t *testing.T) {
	pair := MatchedPair{}
	finding := Finding{}
	partitions := []Partition{
		{},
		{Matched: []MatchedPair{pair}},
		{Matched: []MatchedPair{pair}, FalsePositives: []Finding{finding}},
		{Matched: []MatchedPair{pair}, FalseNegatives: []Finding{finding}},
		{FalsePositives: []Finding{finding}, FalseNegatives: []Finding{finding}},
	}
	for i, p := range partitions {
		m := ComputeMetrics(p)
		for name, v := range map[string]float64{"precision": m.Precision, "recall": m.Recall, "f1": m.F1} {
			if v < 0 || v > 1 {
				t.Errorf("partition %d: %s = %v out of [0, 1]", i, name, v)
			}
		}
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
