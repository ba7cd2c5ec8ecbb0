package loader

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/dshills/verdict/internal/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// scannerFile is the scanner's output schema: findings nested under a
// top-level key. An absent key decodes to an empty slice.
type scannerFile struct {
	Findings []validate.Finding `json:"findings"`
}

// groundTruthFile is the wrapped ground-truth schema. Generators that emit a
// flat array instead are handled in GroundTruth.
type groundTruthFile struct {
	GroundTruth []validate.Finding `json:"groundTruth"`
}

// Scanner loads scanner output from a JSON file. Order and duplicates are
// preserved; record fields missing from the file decode to empty strings.
func Scanner(path string) ([]validate.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scanner output: %w", err)
	}
	var file scannerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scanner output %s: %w", path, err)
	}
	return file.Findings, nil
}

// GroundTruth loads the ground-truth reference set from a JSON file. Both
// layouts in the wild are accepted: a flat array of findings, or an object
// wrapping the array under a "groundTruth" key.
func GroundTruth(path string) ([]validate.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ground truth: %w", err)
	}

	var flat []validate.Finding
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}

	var file groundTruthFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing ground truth %s: %w", path, err)
	}
	return file.GroundTruth, nil
}
