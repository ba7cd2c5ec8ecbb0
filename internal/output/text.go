package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dshills/verdict/internal/validate"
)

const bannerWidth = 70

// TextWriter outputs a human-readable validation report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *validate.Report, opts Options) error {
	ew := &errWriter{w: w}

	ew.banner("SCAN VALIDATION REPORT")
	ew.println("")
	ew.printf("Scanner findings:       %d\n", report.Inputs.ScannerCount)
	ew.printf("Ground truth findings:  %d\n", report.Inputs.GroundTruthCount)
	ew.println("")

	ew.println("METRICS:")
	ew.println(strings.Repeat("-", 40))
	ew.printf("True Positives:  %d\n", report.Summary.TruePositives)
	ew.printf("False Positives: %d\n", report.Summary.FalsePositives)
	ew.printf("False Negatives: %d\n", report.Summary.FalseNegatives)
	ew.println("")
	ew.printf("Precision: %s\n", percent(report.Summary.Metrics.Precision))
	ew.printf("Recall:    %s\n", percent(report.Summary.Metrics.Recall))
	ew.printf("F1 Score:  %s\n", percent(report.Summary.Metrics.F1))
	ew.println("")

	writeCategorySection(ew, "FALSE POSITIVES BY CATEGORY", report.FalsePositivesByCategory)
	writeCategorySection(ew, "FALSE NEGATIVES BY CATEGORY", report.FalseNegativesByCategory)

	if len(report.Matched) > 0 {
		ew.banner(fmt.Sprintf("TRUE POSITIVES (%d correctly detected)", len(report.Matched)))
		shown := capLen(len(report.Matched), opts.TopN)
		for _, pair := range report.Matched[:shown] {
			ew.printf("  %s::%s\n", pair.Scanner.ClassName, pair.Scanner.FieldName)
			ew.printf("    Type: %s\n", orNA(truncate(pair.Scanner.FieldType, 60)))
		}
		writeRemainder(ew, len(report.Matched), shown)
		ew.println("")
	}

	if len(report.FalseNegatives) > 0 {
		ew.banner(fmt.Sprintf("FALSE NEGATIVES (%d missed by scanner)", len(report.FalseNegatives)))
		shown := capLen(len(report.FalseNegatives), opts.TopN)
		for _, f := range report.FalseNegatives[:shown] {
			ew.printf("  %s::%s\n", f.ClassName, f.FieldName)
			ew.printf("    Type: %s\n", orNA(f.FieldType))
			ew.printf("    Pattern: %s\n", orNA(f.Pattern))
		}
		writeRemainder(ew, len(report.FalseNegatives), shown)
		ew.println("")
	}

	if len(report.FalsePositives) > 0 {
		ew.banner(fmt.Sprintf("FALSE POSITIVES (%d extra detections)", len(report.FalsePositives)))
		writeFalsePositivesByClass(ew, report.FalsePositives, opts.TopN)
		ew.println("")
	}

	if len(report.GroundTruthByPackage) > 0 {
		ew.banner("GROUND TRUTH BY PACKAGE")
		for _, pc := range report.GroundTruthByPackage {
			ew.printf("  %s: %d\n", pc.Package, pc.Count)
		}
		ew.println("")
	}

	ew.banner("SUMMARY")
	ew.printf("Ground truth: %d findings\n", report.Inputs.GroundTruthCount)
	ew.printf("Scanner:      %d findings\n", report.Inputs.ScannerCount)
	ew.printf("Match rate:   %d / %d = %s recall\n",
		report.Summary.TruePositives, report.Inputs.GroundTruthCount,
		percent1(report.Summary.Metrics.Recall))
	ew.println("")
	ew.printf("Completed in %dms (load: %dms, compare: %dms)\n",
		report.Timing.TotalMs, report.Timing.LoadMs, report.Timing.CompareMs)

	return ew.err
}

func writeCategorySection(ew *errWriter, title string, groups []validate.CategoryGroup) {
	ew.banner(title)
	if len(groups) == 0 {
		ew.println("  (none)")
	}
	for _, g := range groups {
		ew.printf("  %s: %d\n", g.Category, g.Count)
	}
	ew.println("")
}

// writeFalsePositivesByClass groups false positives by class name so that
// clusters of over-detection in one class read as a unit.
func writeFalsePositivesByClass(ew *errWriter, findings []validate.Finding, topN int) {
	byClass := make(map[string][]validate.Finding)
	for _, f := range findings {
		byClass[f.ClassName] = append(byClass[f.ClassName], f)
	}
	classes := make([]string, 0, len(byClass))
	for cls := range byClass {
		classes = append(classes, cls)
	}
	sort.Strings(classes)

	shown := capLen(len(classes), topN)
	for _, cls := range classes[:shown] {
		ew.printf("  %s\n", cls)
		for _, f := range byClass[cls] {
			ew.printf("    - %s: %s\n", f.FieldName, orNA(truncate(f.FieldType, 50)))
		}
	}
	if len(classes) > shown {
		ew.printf("  ... and %d more classes\n", len(classes)-shown)
	}
}

func writeRemainder(ew *errWriter, total, shown int) {
	if total > shown {
		ew.printf("  ... and %d more\n", total-shown)
	}
}

func capLen(n, topN int) int {
	if topN > 0 && n > topN {
		return topN
	}
	return n
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func percent1(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func (ew *errWriter) banner(title string) {
	ew.println(strings.Repeat("=", bannerWidth))
	ew.println(title)
	ew.println(strings.Repeat("=", bannerWidth))
}
