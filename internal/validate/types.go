package validate

// Finding represents one field flagged as a candidate for shared mutable state.
//
// Identity for matching purposes is (ClassName, FieldName) only; every other
// attribute is payload carried through to the report.
type Finding struct {
	ClassName string `json:"className"`
	FieldName string `json:"fieldName"`
	FieldType string `json:"fieldType,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	RiskLevel string `json:"riskLevel,omitempty"`
}

// MatchedPair holds a scanner finding and the ground-truth finding it matched.
type MatchedPair struct {
	Scanner     Finding `json:"scanner"`
	GroundTruth Finding `json:"groundTruth"`
}

// Partition is the result of reconciling scanner output against ground truth.
// Matched entries are true positives, FalsePositives are scanner-only, and
// FalseNegatives are ground-truth-only.
type Partition struct {
	Matched        []MatchedPair `json:"matched"`
	FalsePositives []Finding     `json:"falsePositives"`
	FalseNegatives []Finding     `json:"falseNegatives"`
}

// Metrics holds the standard detection-quality scores, each in [0, 1].
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Summary provides an overview of a comparison run.
type Summary struct {
	TruePositives  int     `json:"truePositives"`
	FalsePositives int     `json:"falsePositives"`
	FalseNegatives int     `json:"falseNegatives"`
	Metrics        Metrics `json:"metrics"`
}

// InputInfo describes the two input collections that were compared.
type InputInfo struct {
	ScannerPath      string `json:"scannerPath,omitempty"`
	GroundTruthPath  string `json:"groundTruthPath,omitempty"`
	ScannerCount     int    `json:"scannerCount"`
	GroundTruthCount int    `json:"groundTruthCount"`
}

// Timing contains performance metrics.
type Timing struct {
	LoadMs    int64 `json:"loadMs"`
	CompareMs int64 `json:"compareMs"`
	TotalMs   int64 `json:"totalMs"`
}
