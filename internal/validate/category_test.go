package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		fieldType string
		want      Category
	}{
		{"ThreadLocal<SimpleDateFormat>", CategoryThreadLocal},
		{"FastThreadLocal<byte[]>", CategoryThreadLocal},
		{"Counter", CategoryMetrics},
		{"Gauge", CategoryMetrics},
		{"Histogram", CategoryMetrics},
		{"Summary", CategoryMetrics},
		{"LoadingCache<String,Long>", CategoryCache},
		{"Cache<K,V>", CategoryCache},
		{"HashMap<String,String>", CategoryMap},
		{"ConcurrentHashMap<String,Object>", CategoryMap},
		{"Map<String,Object>", CategoryMap},
		{"ArrayList<String>", CategoryList},
		{"List<String>", CategoryList},
		{"CopyOnWriteArrayList<Listener>", CategoryList},
		{"Set<String>", CategorySet},
		{"ConcurrentSkipListSet<String>", CategoryList}, // "List" token checked before "Set"
		{"AtomicLong", CategoryAtomic},
		{"AtomicReference<State>", CategoryAtomic},
		{"Recorder", CategoryRecorder},
		{"String", CategoryOther},
		{"long", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		got := Categorize(Finding{FieldType: tt.fieldType})
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.fieldType, got, tt.want)
		}
	}
}

// Rule order is load-bearing: a type containing both a Metrics token and a
// Map token must land in Metrics because the Metrics rule is checked first.
func TestCategorize_OrderSensitivity(t *testing.T) {
	tests := []struct {
		fieldType string
		want      Category
	}{
		{"ConcurrentHashMap<String,Counter>", CategoryMetrics},
		{"Map<String,Gauge>", CategoryMetrics},
		{"Cache<String,Map<String,String>>", CategoryCache},
		{"ThreadLocal<HashMap<String,String>>", CategoryThreadLocal},
		{"List<AtomicLong>", CategoryList},
	}
	for _, tt := range tests {
		got := Categorize(Finding{FieldType: tt.fieldType})
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.fieldType, got, tt.want)
		}
	}
}

func TestCategorizeAll_PreservesOrderWithinBucket(t *testing.T) {
	findings := []Finding{
		{FieldName: "a", FieldType: "HashMap"},
		{FieldName: "b", FieldType: "AtomicLong"},
		{FieldName: "c", FieldType: "ConcurrentHashMap"},
		{FieldName: "d", FieldType: "Map<K,V>"},
	}

	groups := CategorizeAll(findings)

	maps := groups[CategoryMap]
	if len(maps) != 3 {
		t.Fatalf("Map bucket size = %d, want 3", len(maps))
	}
	wantOrder := []string{"a", "c", "d"}
	for i, f := range maps {
		if f.FieldName != wantOrder[i] {
			t.Errorf("Map bucket[%d] = %q, want %q (input order)", i, f.FieldName, wantOrder[i])
		}
	}
	if len(groups[CategoryAtomic]) != 1 {
		t.Errorf("Atomic bucket size = %d, want 1", len(groups[CategoryAtomic]))
	}
}

func TestCategorizeAll_Total(t *testing.T) {
	findings := []Finding{
		{FieldType: "HashMap"},
		{FieldType: "whatever"},
		{FieldType: ""},
	}
	groups := CategorizeAll(findings)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(findings) {
		t.Errorf("grouped total = %d, want %d (every finding gets exactly one bucket)", total, len(findings))
	}
}

func TestRankGroups_DescendingCountThenName(t *testing.T) {
	groups := map[Category][]Finding{
		CategoryMap:    {{}, {}},
		CategoryAtomic: {{}},
		CategorySet:    {{}},
		CategoryOther:  {{}, {}, {}},
	}

	ranked := RankGroups(groups)

	var got []Category
	for _, g := range ranked {
		got = append(got, g.Category)
	}
	// Other (3), Map (2), then the ties by name: Atomic before Set.
	want := []Category{CategoryOther, CategoryMap, CategoryAtomic, CategorySet}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranked order mismatch (-want +got):\n%s", diff)
	}
}

func TestRankGroups_Empty(t *testing.T) {
	if got := RankGroups(nil); len(got) != 0 {
		t.Errorf("RankGroups(nil) = %v, want empty", got)
	}
}
