package analysis

import (
	"context"
	"fmt"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

// Cohort counts employees that feel valued (satisfaction rating of 4 or
// more) but provided no suggestions, and reports the cohort's share of the
// whole table.
type Cohort struct{}

// CohortSummary is the scalar result of the valued-but-silent analysis.
type CohortSummary struct {
	Count      int
	Total      int
	Proportion float64 // percentage, rounded to two decimals
}

// Render formats the summary as the two-line text artifact.
func (s CohortSummary) Render() string {
	return fmt.Sprintf("Number of Employees Feeling Valued without Suggestions: %d\nProportion: %.2f%%\n", s.Count, s.Proportion)
}

func (a *Cohort) Name() string { return "valued_without_suggestions" }

// Apply returns ErrEmptyDataset for a zero-row table instead of producing
// an undefined proportion.
func (a *Cohort) Apply(ctx context.Context, f *p.Frame) (CohortSummary, error) {
	sat := f.Ints(p.ColSatisfactionRating)
	sug := f.Bools(p.ColProvidedSuggestions)
	if sat == nil || sug == nil {
		return CohortSummary{}, fmt.Errorf("%s: frame does not carry the employee schema", a.Name())
	}
	total := f.Rows()
	if total == 0 {
		return CohortSummary{}, p.ErrEmptyDataset
	}
	count := 0
	for i := 0; i < total; i++ {
		s, ok := sat.Get(i)
		if !ok || s < 4 {
			continue
		}
		if v, ok := sug.Get(i); ok && !v {
			count++
		}
	}
	return CohortSummary{
		Count:      count,
		Total:      total,
		Proportion: p.Round2(100 * float64(count) / float64(total)),
	}, nil
}
