package output

import (
	"io"

	"github.com/dshills/verdict/internal/validate"
)

// MarkdownWriter outputs a CI-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *validate.Report, opts Options) error {
	ew := &errWriter{w: w}

	ew.printf("## Verdict Scan Validation\n\n")

	ew.printf("| Metric | Value |\n")
	ew.printf("|--------|-------|\n")
	ew.printf("| True Positives  | %d |\n", report.Summary.TruePositives)
	ew.printf("| False Positives | %d |\n", report.Summary.FalsePositives)
	ew.printf("| False Negatives | %d |\n", report.Summary.FalseNegatives)
	ew.printf("| Precision | %s |\n", percent(report.Summary.Metrics.Precision))
	ew.printf("| Recall    | %s |\n", percent(report.Summary.Metrics.Recall))
	ew.printf("| F1 Score  | %s |\n\n", percent(report.Summary.Metrics.F1))

	if report.Summary.FalsePositives == 0 && report.Summary.FalseNegatives == 0 {
		ew.println("Scanner output matches ground truth exactly. :white_check_mark:")
		return ew.err
	}

	mdCategoryTable(ew, "False positives by category", report.FalsePositivesByCategory)
	mdCategoryTable(ew, "False negatives by category", report.FalseNegativesByCategory)

	mdFindingSection(ew, "False positives", report.FalsePositives, opts.TopN)
	mdFindingSection(ew, "False negatives", report.FalseNegatives, opts.TopN)

	ew.printf("*Compared %d scanner findings against %d ground-truth findings in %dms.*\n",
		report.Inputs.ScannerCount, report.Inputs.GroundTruthCount, report.Timing.TotalMs)

	return ew.err
}

func mdCategoryTable(ew *errWriter, title string, groups []validate.CategoryGroup) {
	if len(groups) == 0 {
		return
	}
	ew.printf("### %s\n\n", title)
	ew.printf("| Category | Count |\n")
	ew.printf("|----------|-------|\n")
	for _, g := range groups {
		ew.printf("| %s | %d |\n", g.Category, g.Count)
	}
	ew.println("")
}

func mdFindingSection(ew *errWriter, title string, findings []validate.Finding, topN int) {
	if len(findings) == 0 {
		return
	}
	ew.printf("<details>\n<summary>%s (%d)</summary>\n\n", title, len(findings))
	shown := capLen(len(findings), topN)
	for _, f := range findings[:shown] {
		ew.printf("- `%s::%s` — %s\n", f.ClassName, f.FieldName, orNA(f.FieldType))
	}
	if len(findings) > shown {
		ew.printf("- ... and %d more\n", len(findings)-shown)
	}
	ew.printf("\n</details>\n\n")
}
