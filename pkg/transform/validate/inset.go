// Package validate holds opt-in strictness checks. A failed check aborts
// the run before any artifact is written.
package validate

import (
	"context"
	"fmt"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type InSet struct {
	Column string
	Values map[string]struct{}
}

func NewInSet(col string, vals []string) *InSet {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return &InSet{Column: col, Values: m}
}

// NewEngagementLevels checks the engagement column against the three known
// levels, for callers who want unknown categories to fail the run instead
// of being skipped by the ranking analysis.
func NewEngagementLevels() *InSet {
	return NewInSet(p.ColEngagementLevel, []string{p.EngagementLow, p.EngagementMedium, p.EngagementHigh})
}

func (t *InSet) Name() string { return "validate_in" }

func (t *InSet) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	sc := f.Strings(t.Column)
	if sc == nil {
		return f, nil
	}
	var bad int
	for i := 0; i < sc.Len(); i++ {
		if sc.IsNull(i) {
			continue
		}
		v, _ := sc.Get(i)
		if _, ok := t.Values[v]; !ok {
			bad++
		}
	}
	if bad > 0 {
		return f, fmt.Errorf("validate_in: column %s has %d values outside allowed set", t.Column, bad)
	}
	return f, nil
}
