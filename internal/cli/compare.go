package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/verdict/internal/config"
	"github.com/dshills/verdict/internal/loader"
	"github.com/dshills/verdict/internal/output"
	"github.com/dshills/verdict/internal/validate"
)

// Shared compare flags
var (
	flagFormat       string
	flagOut          string
	flagTopN         int
	flagPackageDepth int
	flagFailUnder    float64
)

func addCompareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&flagTopN, "top-n", 0, "Maximum findings listed per report section (0 = unlimited)")
	cmd.Flags().IntVar(&flagPackageDepth, "package-depth", 0, "Package prefix depth for the ground-truth breakdown")
	cmd.Flags().Float64Var(&flagFailUnder, "fail-under", 0, "Exit non-zero when F1 falls below this threshold")
}

func buildOverrides(args []string) map[string]string {
	m := make(map[string]string)
	if len(args) > 0 {
		m["scannerPath"] = args[0]
	}
	if len(args) > 1 {
		m["groundTruthPath"] = args[1]
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagTopN > 0 {
		m["topN"] = fmt.Sprintf("%d", flagTopN)
	}
	if flagPackageDepth > 0 {
		m["packageDepth"] = fmt.Sprintf("%d", flagPackageDepth)
	}
	if flagFailUnder > 0 {
		m["failUnder"] = fmt.Sprintf("%g", flagFailUnder)
	}
	return m
}

var compareCmd = &cobra.Command{
	Use:   "compare [scanner.json] [ground-truth.json]",
	Short: "Compare scanner output against a ground-truth file",
	Long: "Compare scanner output against a ground-truth file and report detection-quality metrics. " +
		"Paths may be given as arguments or set in the config file.",
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(args))
		if err != nil {
			return err
		}
		if cfg.ScannerPath == "" || cfg.GroundTruthPath == "" {
			return fmt.Errorf("scanner and ground-truth paths are required (arguments or config)")
		}
		runCompare(cfg)
		return nil
	},
}

func runCompare(cfg config.Config) {
	startTime := time.Now()

	scanner, err := loader.Scanner(cfg.ScannerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	groundTruth, err := loader.GroundTruth(cfg.GroundTruthPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	loadMs := time.Since(startTime).Milliseconds()

	compareStart := time.Now()
	partition := validate.Reconcile(scanner, groundTruth)
	compareMs := time.Since(compareStart).Milliseconds()

	report := validate.BuildReport(
		validate.InputInfo{
			ScannerPath:      cfg.ScannerPath,
			GroundTruthPath:  cfg.GroundTruthPath,
			ScannerCount:     len(scanner),
			GroundTruthCount: len(groundTruth),
		},
		partition,
		cfg.PackageDepth,
		validate.Timing{
			LoadMs:    loadMs,
			CompareMs: compareMs,
			TotalMs:   time.Since(startTime).Milliseconds(),
		},
	)

	if err := output.WriteReport(report, cfg.Format, flagOut, output.Options{TopN: cfg.TopN}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if belowThreshold(report.Summary.Metrics.F1, cfg.FailUnder) {
		fmt.Fprintf(os.Stderr, "F1 %.4f is below threshold %.4f\n", report.Summary.Metrics.F1, cfg.FailUnder)
		exitCode = ExitThreshold
	}
}

func belowThreshold(f1, failUnder float64) bool {
	return failUnder > 0 && f1 < failUnder
}

func init() {
	addCompareFlags(compareCmd)
}
