package validate

// ComputeMetrics derives precision, recall, and F1 from a partition.
//
// A zero denominator yields 0 rather than NaN: no predictions means zero
// precision, no ground truth means zero recall, and two empty inputs score
// (0, 0, 0). This convention must hold exactly for degenerate inputs.
func ComputeMetrics(p Partition) Metrics {
	tp := len(p.Matched)
	fp := len(p.FalsePositives)
	fn := len(p.FalseNegatives)

	var m Metrics
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
