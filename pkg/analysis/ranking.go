package analysis

import (
	"context"
	"fmt"
	"sort"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

// Ranking averages the ordinal engagement score per job title. Rows whose
// engagement level is outside {Low, Medium, High} carry no score and are
// skipped; a title whose rows are all unscored does not appear at all.
type Ranking struct{}

func (a *Ranking) Name() string { return "engagement_by_title" }

// Apply returns a JobTitle,AvgEngagementLevel frame ordered by average
// descending, ties broken by lexicographically smaller title. Averages are
// rounded half-up to two decimals.
func (a *Ranking) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	title := f.Strings(p.ColJobTitle)
	eng := f.Strings(p.ColEngagementLevel)
	if title == nil || eng == nil {
		return nil, fmt.Errorf("%s: frame does not carry the employee schema", a.Name())
	}

	type acc struct {
		sum int64
		n   int
	}
	byTitle := make(map[string]*acc)
	for i := 0; i < f.Rows(); i++ {
		jt, ok := title.Get(i)
		if !ok {
			continue
		}
		level, ok := eng.Get(i)
		if !ok {
			continue
		}
		score, ok := p.EngagementScore(level)
		if !ok {
			continue
		}
		g := byTitle[jt]
		if g == nil {
			g = &acc{}
			byTitle[jt] = g
		}
		g.sum += score
		g.n++
	}

	type entry struct {
		title string
		avg   float64
	}
	entries := make([]entry, 0, len(byTitle))
	for jt, g := range byTitle {
		entries = append(entries, entry{title: jt, avg: p.Round2(float64(g.sum) / float64(g.n))})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].avg != entries[j].avg {
			return entries[i].avg > entries[j].avg
		}
		return entries[i].title < entries[j].title
	})

	out := p.NewFrame(p.Schema{Columns: []p.ColumnSchema{
		{Name: p.ColJobTitle, Type: p.KindString},
		{Name: ColAvgEngagementLevel, Type: p.KindFloat},
	}})
	for _, e := range entries {
		out.AppendNullRow()
		row := out.Rows() - 1
		_ = out.SetCell(row, p.ColJobTitle, e.title)
		_ = out.SetCell(row, ColAvgEngagementLevel, e.avg)
	}
	return out, nil
}

// TopTitle returns the best-ranked job title from a Ranking result, or
// false for an empty result.
func TopTitle(result *p.Frame) (string, bool) {
	if result == nil || result.Rows() == 0 {
		return "", false
	}
	return result.Strings(p.ColJobTitle).Get(0)
}
