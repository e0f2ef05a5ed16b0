package categorizer

import "sort"

// CategoryMap is the fixed context-to-category lookup table. The first
// context on a record (its primary context) is looked up here.
var CategoryMap = map[string]string{
	"conflict":         "conflict_resolution",
	"repair":           "repair",
	"boundary":         "boundary",
	"planning":         "practical",
	"co_parenting":     "relationship",
	"work/school":      "communication",
	"safety":           "emotional",
	"misunderstanding": "clarity",
	"general":          "general",
}

const (
	// FallbackCategory is assigned when the primary context has no entry in
	// CategoryMap.
	FallbackCategory = "emotional"

	// DefaultCategory is assigned when a record has no contexts at all.
	DefaultCategory = "general"
)

// Categorizer derives a category label from a record's context labels.
type Categorizer interface {
	Categorize(contexts []string) string
}

// Static is the table-driven Categorizer used by the annotate pipeline.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

// Categorize maps the primary context through CategoryMap. Contexts beyond
// the first are ignored.
func (s *Static) Categorize(contexts []string) string {
	if len(contexts) == 0 {
		return DefaultCategory
	}
	if category, ok := CategoryMap[contexts[0]]; ok {
		return category
	}
	return FallbackCategory
}

// Contexts returns the known context labels, sorted.
func Contexts() []string {
	labels := make([]string, 0, len(CategoryMap))
	for label := range CategoryMap {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Categories returns the distinct category labels a Static categorizer can
// produce, sorted.
func Categories() []string {
	seen := make(map[string]struct{}, len(CategoryMap))
	for _, category := range CategoryMap {
		seen[category] = struct{}{}
	}
	seen[FallbackCategory] = struct{}{}
	seen[DefaultCategory] = struct{}{}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
