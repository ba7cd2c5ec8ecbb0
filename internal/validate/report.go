package validate

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// PackageCount is one entry in the ground-truth-by-package breakdown.
type PackageCount struct {
	Package string `json:"package"`
	Count   int    `json:"count"`
}

// Report is the top-level output structure for one comparison run.
type Report struct {
	Tool                     string          `json:"tool"`
	Version                  string          `json:"version"`
	RunID                    string          `json:"runId"`
	Inputs                   InputInfo       `json:"inputs"`
	Summary                  Summary         `json:"summary"`
	Matched                  []MatchedPair   `json:"matched"`
	FalsePositives           []Finding       `json:"falsePositives"`
	FalseNegatives           []Finding       `json:"falseNegatives"`
	FalsePositivesByCategory []CategoryGroup `json:"falsePositivesByCategory"`
	FalseNegativesByCategory []CategoryGroup `json:"falseNegativesByCategory"`
	GroundTruthByPackage     []PackageCount  `json:"groundTruthByPackage"`
	Timing                   Timing          `json:"timing"`
}

// BuildReport assembles the full report for a reconciled partition: metrics,
// category breakdowns of the mismatch groups, and the package breakdown of
// the ground-truth side.
func BuildReport(inputs InputInfo, p Partition, packageDepth int, timing Timing) *Report {
	groundTruth := make([]Finding, 0, len(p.Matched)+len(p.FalseNegatives))
	for _, pair := range p.Matched {
		groundTruth = append(groundTruth, pair.GroundTruth)
	}
	groundTruth = append(groundTruth, p.FalseNegatives...)

	return &Report{
		Tool:    "verdict",
		Version: "1.0",
		RunID:   uuid.NewString(),
		Inputs:  inputs,
		Summary: Summary{
			TruePositives:  len(p.Matched),
			FalsePositives: len(p.FalsePositives),
			FalseNegatives: len(p.FalseNegatives),
			Metrics:        ComputeMetrics(p),
		},
		Matched:                  p.Matched,
		FalsePositives:           p.FalsePositives,
		FalseNegatives:           p.FalseNegatives,
		FalsePositivesByCategory: RankGroups(CategorizeAll(p.FalsePositives)),
		FalseNegativesByCategory: RankGroups(CategorizeAll(p.FalseNegatives)),
		GroundTruthByPackage:     PackageBreakdown(groundTruth, packageDepth),
		Timing:                   timing,
	}
}

// PackageBreakdown counts findings by package prefix of the given depth
// (number of leading dot-separated segments of the normalized class name).
// Results are ordered by descending count, then package name ascending.
// Depth <= 0 yields nil.
func PackageBreakdown(findings []Finding, depth int) []PackageCount {
	if depth <= 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, f := range findings {
		counts[packagePrefix(f.ClassName, depth)]++
	}
	breakdown := make([]PackageCount, 0, len(counts))
	for pkg, n := range counts {
		breakdown = append(breakdown, PackageCount{Package: pkg, Count: n})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Package < breakdown[j].Package
	})
	return breakdown
}

func packagePrefix(className string, depth int) string {
	parts := strings.Split(NormalizeClassName(className), canonicalSeparator)
	// The last segment is the class itself, never part of the package.
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > depth {
		parts = parts[:depth]
	}
	return strings.Join(parts, canonicalSeparator)
}
