// Package analysis holds the three batch analyses run over a loaded
// employee table. Each analysis reads the frame without mutating it and
// produces its own result, so they can run in any order.
package analysis

import (
	"context"
	"fmt"
	"sort"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

// Result column names for the tabular analyses.
const (
	ColPercentage         = "Percentage"
	ColAvgEngagementLevel = "AvgEngagementLevel"
)

// DefaultRatioThreshold is the percentage a department must exceed to
// appear in the ratio report.
const DefaultRatioThreshold = 50.0

// Ratio computes, per department, the percentage of employees that are
// both highly satisfied (rating above 4) and highly engaged, over the full
// department population. Departments at or below Threshold are dropped.
type Ratio struct {
	Threshold float64 // <= 0 means DefaultRatioThreshold
}

func (a *Ratio) Name() string { return "department_engagement_ratio" }

// Apply returns a Department,Percentage frame sorted by department name.
// Percentages are rounded half-up to two decimals before the threshold
// comparison. Departments with no rows cannot occur in the input, so no
// denominator is ever zero.
func (a *Ratio) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	dep := f.Strings(p.ColDepartment)
	sat := f.Ints(p.ColSatisfactionRating)
	eng := f.Strings(p.ColEngagementLevel)
	if dep == nil || sat == nil || eng == nil {
		return nil, fmt.Errorf("%s: frame does not carry the employee schema", a.Name())
	}

	type tally struct{ total, matched int }
	byDept := make(map[string]*tally)
	for i := 0; i < f.Rows(); i++ {
		d, ok := dep.Get(i)
		if !ok {
			continue
		}
		t := byDept[d]
		if t == nil {
			t = &tally{}
			byDept[d] = t
		}
		t.total++
		if s, ok := sat.Get(i); ok && s > 4 {
			if e, ok := eng.Get(i); ok && e == p.EngagementHigh {
				t.matched++
			}
		}
	}

	names := make([]string, 0, len(byDept))
	for d := range byDept {
		names = append(names, d)
	}
	sort.Strings(names)

	th := a.Threshold
	if th <= 0 {
		th = DefaultRatioThreshold
	}
	out := p.NewFrame(p.Schema{Columns: []p.ColumnSchema{
		{Name: p.ColDepartment, Type: p.KindString},
		{Name: ColPercentage, Type: p.KindFloat},
	}})
	for _, d := range names {
		t := byDept[d]
		pct := p.Round2(100 * float64(t.matched) / float64(t.total))
		if pct <= th {
			continue
		}
		out.AppendNullRow()
		row := out.Rows() - 1
		_ = out.SetCell(row, p.ColDepartment, d)
		_ = out.SetCell(row, ColPercentage, pct)
	}
	return out, nil
}
