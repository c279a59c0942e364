package validate

import (
	"context"
	"fmt"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type Range struct {
	Column string
	Min    *float64
	Max    *float64
}

// NewSatisfactionRange bounds the satisfaction column to its 1..5 domain.
func NewSatisfactionRange() *Range {
	lo, hi := 1.0, 5.0
	return &Range{Column: p.ColSatisfactionRating, Min: &lo, Max: &hi}
}

func (t *Range) Name() string { return "validate_range" }

func (t *Range) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	var bad int
	switch c := col.(type) {
	case *p.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if t.Min != nil && v < *t.Min {
				bad++
			}
			if t.Max != nil && v > *t.Max {
				bad++
			}
		}
	case *p.IntColumn:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if t.Min != nil && float64(v) < *t.Min {
				bad++
			}
			if t.Max != nil && float64(v) > *t.Max {
				bad++
			}
		}
	}
	if bad > 0 {
		return f, fmt.Errorf("validate_range: column %s has %d out-of-range values", t.Column, bad)
	}
	return f, nil
}
