package validate

// keyedFindings indexes a finding collection by comparison key. Key order is
// insertion order of the first occurrence; the stored finding is the last
// occurrence, so duplicate keys within one side collapse silently.
type keyedFindings struct {
	keys  []string
	byKey map[string]Finding
}

func indexByKey(findings []Finding) keyedFindings {
	kf := keyedFindings{byKey: make(map[string]Finding, len(findings))}
	for _, f := range findings {
		k := BuildKey(f)
		if _, seen := kf.byKey[k]; !seen {
			kf.keys = append(kf.keys, k)
		}
		kf.byKey[k] = f
	}
	return kf
}

// Reconcile partitions scanner findings against ground-truth findings by
// comparison key. Matched pairs follow the scanner's key order and false
// negatives follow the ground truth's key order, so truncated displays stay
// reproducible. Pure function; it never fails.
func Reconcile(scanner, groundTruth []Finding) Partition {
	s := indexByKey(scanner)
	g := indexByKey(groundTruth)

	var p Partition
	for _, k := range s.keys {
		if gt, ok := g.byKey[k]; ok {
			p.Matched = append(p.Matched, MatchedPair{Scanner: s.byKey[k], GroundTruth: gt})
		} else {
			p.FalsePositives = append(p.FalsePositives, s.byKey[k])
		}
	}
	for _, k := range g.keys {
		if _, ok := s.byKey[k]; !ok {
			p.FalseNegatives = append(p.FalseNegatives, g.byKey[k])
		}
	}
	return p
}
