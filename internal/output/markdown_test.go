package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/verdict/internal/validate"
)

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, sampleReport(), Options{TopN: 15}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"## Verdict Scan Validation",
		"| True Positives  | 1 |",
		"| Precision | 33.33% |",
		"| F1 Score  | 40.00% |",
		"### False positives by category",
		"| Map | 2 |",
		"### False negatives by category",
		"| ThreadLocal | 1 |",
		"<details>",
		"`com.acme.Bar::m`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n---\n%s", want, out)
		}
	}
}

func TestMarkdownWriter_ExactMatch(t *testing.T) {
	findings := []validate.Finding{{ClassName: "com.acme.Foo", FieldName: "x", FieldType: "AtomicLong"}}
	p := validate.Reconcile(findings, findings)
	report := validate.BuildReport(validate.InputInfo{ScannerCount: 1, GroundTruthCount: 1}, p, 3, validate.Timing{})

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, report, Options{}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "matches ground truth exactly") {
		t.Errorf("exact-match note missing:\n%s", out)
	}
	if strings.Contains(out, "<details>") {
		t.Errorf("unexpected mismatch sections for exact match:\n%s", out)
	}
}

func TestMarkdownWriter_Truncation(t *testing.T) {
	var findings []validate.Finding
	for i := 0; i < 10; i++ {
		findings = append(findings, validate.Finding{
			ClassName: "com.acme.C" + strings.Repeat("y", i+1),
			FieldName: "f",
			FieldType: "Set",
		})
	}
	p := validate.Reconcile(findings, nil)
	report := validate.BuildReport(validate.InputInfo{ScannerCount: 10}, p, 3, validate.Timing{})

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, report, Options{TopN: 4}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "... and 6 more") {
		t.Errorf("markdown truncation remainder missing:\n%s", buf.String())
	}
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"markdown", false},
		{"sarif", true},
		{"", true},
	}
	for _, tt := range tests {
		w, err := GetWriter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetWriter(%q) expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetWriter(%q) unexpected error: %v", tt.format, err)
			continue
		}
		if w == nil {
			t.Errorf("GetWriter(%q) returned nil writer", tt.format)
		}
	}
}
