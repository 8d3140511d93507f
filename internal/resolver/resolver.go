// Package resolver maps free-text symptom descriptions to knowledge base
// records: direct keyword lookup first, zero-shot classification on miss.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/medcheck/ai-symptom-checker-backend/internal/knowledge"
)

// Classifier ranks candidate labels against free text, most relevant first.
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) ([]string, error)
}

// Resolver holds the fixed table and the classification capability. The
// capability is resolved once at startup; a nil handle means it never became
// available and unmatched input falls back to the general record.
type Resolver struct {
	base *knowledge.Base
	clf  Classifier
}

func New(base *knowledge.Base, clf Classifier) *Resolver {
	return &Resolver{base: base, clf: clf}
}

// ClassifierReady reports whether the zero-shot capability was acquired.
func (r *Resolver) ClassifierReady() bool {
	return r.clf != nil
}

// Resolve runs the two-stage lookup. Stage one scans the table in insertion
// order and returns the first entry whose name occurs in the lowercased
// input; earlier table position wins over earlier position in the text.
// Stage two hands the table names to the classifier as candidate labels and
// maps the top-ranked label back to its record. A ranking that is empty or
// names an unknown label resolves to the sentinel rather than erroring; only
// a failed classification call returns an error.
func (r *Resolver) Resolve(ctx context.Context, text string) (knowledge.Record, error) {
	normalized := strings.ToLower(text)

	for _, e := range r.base.Entries() {
		if strings.Contains(normalized, strings.ToLower(e.Name)) {
			return e.Record, nil
		}
	}

	if r.clf == nil {
		return r.base.Sentinel(), nil
	}

	ranked, err := r.clf.Classify(ctx, normalized, r.base.Names())
	if err != nil {
		return knowledge.Record{}, fmt.Errorf("classify symptoms: %w", err)
	}
	if len(ranked) == 0 {
		return r.base.Sentinel(), nil
	}
	rec, ok := r.base.Lookup(ranked[0])
	if !ok {
		return r.base.Sentinel(), nil
	}
	return rec, nil
}
