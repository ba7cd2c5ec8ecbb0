package validate

import (
	"sort"
	"strings"
)

// Category is the semantic bucket a finding falls into based on its declared
// field type.
type Category string

const (
	CategoryThreadLocal Category = "ThreadLocal"
	CategoryMetrics     Category = "Metrics"
	CategoryCache       Category = "Cache"
	CategoryMap         Category = "Map"
	CategoryList        Category = "List"
	CategorySet         Category = "Set"
	CategoryAtomic      Category = "Atomic"
	CategoryRecorder    Category = "Recorder"
	CategoryOther       Category = "Other"
)

// categoryRule matches a field type that contains any of its tokens.
type categoryRule struct {
	label  Category
	tokens []string
}

// categoryRules is evaluated in order and the first match wins. A type string
// can satisfy several rules ("ConcurrentHashMap<String,Counter>" contains both
// a Metrics token and a Map token), so reordering changes bucket assignments.
var categoryRules = []categoryRule{
	{CategoryThreadLocal, []string{"ThreadLocal", "FastThreadLocal"}},
	{CategoryMetrics, []string{"Counter", "Gauge", "Histogram", "Summary"}},
	{CategoryCache, []string{"Cache", "LoadingCache"}},
	{CategoryMap, []string{"Map", "HashMap", "ConcurrentHashMap"}},
	{CategoryList, []string{"List", "ArrayList"}},
	{CategorySet, []string{"Set"}},
	{CategoryAtomic, []string{"Atomic"}},
	{CategoryRecorder, []string{"Recorder"}},
}

// Categorize assigns a finding to exactly one category by substring-matching
// its declared field type against the ordered rule list. Findings that match
// no rule land in CategoryOther.
func Categorize(f Finding) Category {
	for _, rule := range categoryRules {
		for _, token := range rule.tokens {
			if strings.Contains(f.FieldType, token) {
				return rule.label
			}
		}
	}
	return CategoryOther
}

// CategorizeAll groups findings by category, preserving each finding's
// relative input order within its bucket.
func CategorizeAll(findings []Finding) map[Category][]Finding {
	groups := make(map[Category][]Finding)
	for _, f := range findings {
		c := Categorize(f)
		groups[c] = append(groups[c], f)
	}
	return groups
}

// CategoryGroup is one ranked bucket in a category breakdown.
type CategoryGroup struct {
	Category Category  `json:"category"`
	Count    int       `json:"count"`
	Findings []Finding `json:"findings"`
}

// RankGroups orders category buckets by descending count, breaking ties by
// category name ascending, so breakdowns render identically across runs.
func RankGroups(groups map[Category][]Finding) []CategoryGroup {
	ranked := make([]CategoryGroup, 0, len(groups))
	for c, findings := range groups {
		ranked = append(ranked, CategoryGroup{Category: c, Count: len(findings), Findings: findings})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}
