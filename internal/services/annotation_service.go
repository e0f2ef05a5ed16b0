package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mend/internal/dataset"
	"mend/internal/models"
	"mend/pkg/categorizer"
)

// Summary describes one annotation pass over a document.
type Summary struct {
	Total      int
	ByCategory map[string]int
}

// Issue is a single schema-assumption violation found by Validate.
type Issue struct {
	Index int
	Field string
	Msg   string
}

func (i Issue) String() string {
	return fmt.Sprintf("record %d, %s: %s", i.Index, i.Field, i.Msg)
}

// AnnotationService derives category fields for advice records and owns the
// read-modify-write cycle against the dataset file.
type AnnotationService struct {
	store *dataset.Store
	cat   categorizer.Categorizer
}

func NewAnnotationService(store *dataset.Store, cat categorizer.Categorizer) *AnnotationService {
	return &AnnotationService{
		store: store,
		cat:   cat,
	}
}

// AnnotateDocument assigns a category to every record in place, in array
// order. Existing category values are overwritten. This is the pure
// transform; it never touches the filesystem.
func (s *AnnotationService) AnnotateDocument(doc models.Document) Summary {
	summary := Summary{Total: len(doc), ByCategory: make(map[string]int)}
	for _, record := range doc {
		category := s.cat.Categorize(record.Contexts())
		record.SetCategory(category)
		summary.ByCategory[category]++
	}
	return summary
}

// AnnotateFile runs the full load -> annotate -> save pass against the
// dataset at path. The read completes fully before the write begins.
func (s *AnnotationService) AnnotateFile(ctx context.Context, path string) (Summary, error) {
	doc, err := s.store.Load(path)
	if err != nil {
		return Summary{}, err
	}
	log.Debugf("annotating %d records from %s", len(doc), path)

	summary := s.AnnotateDocument(doc)

	if err := s.store.Save(path, doc); err != nil {
		return Summary{}, err
	}
	log.Debugf("wrote %s: %d records across %d categories", path, summary.Total, len(summary.ByCategory))
	return summary, nil
}

// Stats reports the category distribution of the dataset as stored, without
// modifying it. Records not yet annotated count under the empty category.
func (s *AnnotationService) Stats(ctx context.Context, path string) (Summary, error) {
	doc, err := s.store.Load(path)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(doc), ByCategory: make(map[string]int)}
	for _, record := range doc {
		summary.ByCategory[record.Category()]++
	}
	return summary, nil
}

// Validate checks the schema assumptions the annotate pass relies on and
// reports every violation it finds. A clean dataset yields no issues.
func (s *AnnotationService) Validate(ctx context.Context, path string) ([]Issue, error) {
	doc, err := s.store.Load(path)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for i, record := range doc {
		if raw, ok := record["contexts"]; ok {
			switch list := raw.(type) {
			case []string:
				// Built in code, always valid.
			case []any:
				for j, item := range list {
					if _, ok := item.(string); !ok {
						issues = append(issues, Issue{
							Index: i,
							Field: "contexts",
							Msg:   fmt.Sprintf("element %d is not a string", j),
						})
					}
				}
			default:
				issues = append(issues, Issue{Index: i, Field: "contexts", Msg: "not an array"})
			}
		}
		if raw, ok := record["category"]; ok {
			if _, ok := raw.(string); !ok {
				issues = append(issues, Issue{Index: i, Field: "category", Msg: "not a string"})
			}
		}
	}
	if len(issues) > 0 {
		log.Debugf("validate %s: %d issue(s)", path, len(issues))
	}
	return issues, nil
}

// AddRecord appends a new advice record to the dataset with a generated id
// and a category derived from the given contexts, then saves the file.
func (s *AnnotationService) AddRecord(ctx context.Context, path, advice string, contexts []string) (models.Record, error) {
	if strings.TrimSpace(advice) == "" {
		return nil, fmt.Errorf("%w: advice text is empty", models.ErrValidation)
	}

	doc, err := s.store.Load(path)
	if err != nil {
		return nil, err
	}

	record := models.Record{
		"id":     uuid.NewString(),
		"advice": advice,
	}
	if len(contexts) > 0 {
		record["contexts"] = contexts
	}
	record.SetCategory(s.cat.Categorize(contexts))

	doc = append(doc, record)
	if err := s.store.Save(path, doc); err != nil {
		return nil, err
	}
	log.Debugf("added record %v to %s (category %s)", record["id"], path, record.Category())
	return record, nil
}
